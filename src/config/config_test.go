package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestDefaultConfig(t *testing.T) {
	c := NewDefaultConfig()

	if c.Interval != 2*time.Hour {
		t.Fatalf("default interval should be 2h, not %v", c.Interval)
	}
	if c.SampleAttempts != 3 {
		t.Fatalf("default sample attempts should be 3, not %d", c.SampleAttempts)
	}
	if c.SampleBackoff != 5*time.Second {
		t.Fatalf("default sample backoff should be 5s, not %v", c.SampleBackoff)
	}
	if c.ChurnThreshold != 0.5 {
		t.Fatalf("default churn threshold should be 0.5, not %v", c.ChurnThreshold)
	}
	if c.StatusURL == "" {
		t.Fatal("default status URL should be set")
	}
	if c.WebhookURL != "" {
		t.Fatal("the webhook has no default, it must be configured")
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":     logrus.DebugLevel,
		"info":      logrus.InfoLevel,
		"warn":      logrus.WarnLevel,
		"error":     logrus.ErrorLevel,
		"fatal":     logrus.FatalLevel,
		"panic":     logrus.PanicLevel,
		"gibberish": logrus.DebugLevel,
	}

	for in, want := range cases {
		if got := LogLevel(in); got != want {
			t.Fatalf("LogLevel(%q) should be %v, not %v", in, want, got)
		}
	}
}

func TestTestConfigLogger(t *testing.T) {
	c := NewTestConfig(t, logrus.InfoLevel)

	if c.Logger() == nil {
		t.Fatal("test config should carry a logger")
	}
}
