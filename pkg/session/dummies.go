//go:build linux

package session

import (
	"io"

	"github.com/KnightChaser/llce/pkg/config"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	return &config.AppConfig{
		Name:        "llce",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
}

// NewDummySession creates a new dummy Session for testing
func NewDummySession() *Session {
	return NewSession(NewDummyLog(), NewDummyAppConfig())
}
