package app

import (
	"io"
	"strings"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/KnightChaser/llce/pkg/config"
	"github.com/KnightChaser/llce/pkg/i18n"
	"github.com/KnightChaser/llce/pkg/log"
	"github.com/KnightChaser/llce/pkg/scan"
	"github.com/KnightChaser/llce/pkg/session"
	"github.com/KnightChaser/llce/pkg/ui"
	"github.com/KnightChaser/llce/pkg/utils"
)

// App struct
type App struct {
	closers []io.Closer

	Config  *config.AppConfig
	Log     *logrus.Entry
	Tr      *i18n.TranslationSet
	Session *session.Session
	Repl    *ui.Repl
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
	}
	app.Log = log.NewLogger(config)
	app.Tr = i18n.NewTranslationSet(app.Log, config.UserConfig.Gui.Language)
	app.Session = session.NewSession(app.Log, config)
	app.Repl = ui.NewRepl(app.Log, app.Tr, config, app.Session)
	return app, nil
}

// Run starts the interactive loop
func (app *App) Run() error {
	if !scan.HostIsLittleEndian() {
		return errors.New(app.Tr.NotLittleEndian)
	}
	return app.Repl.Run()
}

// Close closes any resources, detaching from the target first
func (app *App) Close() error {
	app.Session.Detach()
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "target: permission denied",
			newError:      app.Tr.PermissionDenied,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
