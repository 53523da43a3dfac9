package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/xandeum/pnodemon/src/config"
	"github.com/xandeum/pnodemon/src/monitor"
	"github.com/xandeum/pnodemon/src/notify"
	"github.com/xandeum/pnodemon/src/sampler"
	"github.com/xandeum/pnodemon/src/state"
	vers "github.com/xandeum/pnodemon/src/version"
)

var (
	conf    = config.NewDefaultConfig()
	logger  *logrus.Logger
	version *bool
)

func init() {
	RootCmd.Flags().StringP("datadir", "d", conf.DataDir, "Base configuration and state directory")
	RootCmd.Flags().String("log", conf.LogLevel, "Log level (debug, info, warn, error, fatal, panic)")
	RootCmd.Flags().String("status-url", conf.StatusURL, "pNode network-status endpoint")
	RootCmd.Flags().StringP("webhook", "w", conf.WebhookURL, "Chat webhook URL for cycle reports")
	RootCmd.Flags().DurationP("interval", "i", conf.Interval, "Time between monitoring cycles")

	version = RootCmd.Flags().BoolP("version", "v", false, "Show version and exit")
}

//RootCmd is the root command for pnodemon
var RootCmd = &cobra.Command{
	Use:     "pnodemon",
	Short:   "pNode network membership monitor",
	Long:    "Samples the pNode network-status endpoint, reconciles membership against a persisted baseline, and reports changes to a chat webhook.",
	PreRunE: loadConfig,
	RunE:    runMonitor,
}

/*******************************************************************************
* RUN
*******************************************************************************/

func runMonitor(cmd *cobra.Command, args []string) error {
	if *version {
		fmt.Println(vers.Version)

		return nil
	}

	if conf.WebhookURL == "" {
		return fmt.Errorf("no webhook configured; set --webhook, the config file, or PNODEMON_WEBHOOK")
	}

	entry := logger.WithField("prefix", "pnodemon")

	smp := sampler.New(
		conf.StatusURL,
		conf.SampleAttempts,
		conf.SampleTimeout,
		conf.SampleBackoff,
		entry.WithField("component", "sampler"),
	)

	store := state.NewStore(conf.DataDir)
	webhook := notify.NewWebhook(conf.WebhookURL, conf.NotifyTimeout)

	mon := monitor.New(conf, smp, store, webhook, entry)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		mon.Shutdown()
	}()

	mon.Run()

	return nil
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	viper.SetEnvPrefix("pnodemon")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath(viper.GetString("datadir"))
	viper.SetConfigName("pnodemon")

	configErr := viper.ReadInConfig()

	if err := viper.Unmarshal(conf); err != nil {
		return err
	}

	logger = newLogger()
	logger.Level = config.LogLevel(conf.LogLevel)

	if configErr != nil {
		logger.Debug(configErr, ". Taking cli or default.")
	}

	logger.WithFields(logrus.Fields{
		"datadir":    conf.DataDir,
		"log":        conf.LogLevel,
		"status-url": conf.StatusURL,
		"interval":   conf.Interval,
	}).Debug("RUN")

	return nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = new(prefixed.TextFormatter)

	pathMap := lfshook.PathMap{}

	if err := os.MkdirAll(conf.DataDir, 0755); err != nil {
		logger.Info("Failed to create datadir, file logging disabled")

		return logger
	}

	infoLog := filepath.Join(conf.DataDir, "pnodemon_info.log")
	if _, err := os.OpenFile(infoLog, os.O_CREATE|os.O_WRONLY, 0666); err != nil {
		logger.Info("Failed to open pnodemon_info.log file, using default stderr")
	} else {
		pathMap[logrus.InfoLevel] = infoLog
	}

	debugLog := filepath.Join(conf.DataDir, "pnodemon_debug.log")
	if _, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY, 0666); err != nil {
		logger.Info("Failed to open pnodemon_debug.log file, using default stderr")
	} else {
		pathMap[logrus.DebugLevel] = debugLog
	}

	logger.Hooks.Add(lfshook.NewHook(
		pathMap,
		&logrus.TextFormatter{},
	))

	return logger
}
