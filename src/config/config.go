package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/xandeum/pnodemon/src/common"
)

// Default configuration values.
const (
	DefaultLogLevel       = "debug"
	DefaultStatusURL      = "http://atlas.devnet.xandeum.com:3000/api/pods"
	DefaultInterval       = 2 * time.Hour
	DefaultSampleAttempts = 3
	DefaultSampleTimeout  = 10 * time.Second
	DefaultSampleBackoff  = 5 * time.Second
	DefaultChurnThreshold = 0.5
	DefaultNotifyTimeout  = 10 * time.Second
)

// Config contains all the configuration properties of a pnodemon instance.
type Config struct {
	// DataDir is the top-level directory containing pnodemon configuration
	// and state.
	DataDir string `mapstructure:"datadir"`

	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// StatusURL is the network-status endpoint listing the currently
	// registered pNodes.
	StatusURL string `mapstructure:"status-url"`

	// WebhookURL is the chat webhook that receives cycle reports.
	WebhookURL string `mapstructure:"webhook"`

	// Interval is the time between two monitoring cycles. The first cycle
	// runs immediately on startup.
	Interval time.Duration `mapstructure:"interval"`

	// SampleAttempts is the number of status fetches per cycle. The sampler
	// keeps the node set that a strict majority of the successful attempts
	// agree on.
	SampleAttempts int `mapstructure:"sample-attempts"`

	// SampleTimeout bounds each individual status fetch.
	SampleTimeout time.Duration `mapstructure:"sample-timeout"`

	// SampleBackoff is the fixed wait after a failed status fetch before the
	// next attempt.
	SampleBackoff time.Duration `mapstructure:"sample-backoff"`

	// ChurnThreshold is the fraction of the baseline above which a combined
	// added+removed change is rejected instead of committed. This guards
	// against mass false churn from a partial outage of the status endpoint.
	ChurnThreshold float64 `mapstructure:"churn-threshold"`

	// NotifyTimeout bounds the webhook delivery call.
	NotifyTimeout time.Duration `mapstructure:"notify-timeout"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	config := &Config{
		DataDir:        DefaultDataDir(),
		LogLevel:       DefaultLogLevel,
		StatusURL:      DefaultStatusURL,
		Interval:       DefaultInterval,
		SampleAttempts: DefaultSampleAttempts,
		SampleTimeout:  DefaultSampleTimeout,
		SampleBackoff:  DefaultSampleBackoff,
		ChurnThreshold: DefaultChurnThreshold,
		NotifyTimeout:  DefaultNotifyTimeout,
	}

	return config
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB, level logrus.Level) *Config {
	config := NewDefaultConfig()
	config.logger = common.NewTestLogger(t, level)
	return config
}

// Logger returns a formatted logrus Entry, with prefix set to "pnodemon".
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", "pnodemon")
}

// DefaultDataDir returns the default directory name for top-level pnodemon
// config based on the underlying OS, attempting to respect conventions.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, ".PNodemon")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "PNodemon")
		} else {
			return filepath.Join(home, ".pnodemon")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

// HomeDir returns the user's home directory.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.DebugLevel
	}
}
