package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"constenum/internal/diagnostic"
)

// debugEnv turns on debug logging like -v does.
const debugEnv = "CONSTENUM_DEBUG"

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	log.SetLevel(logrus.InfoLevel)
	if verbose || envBool(debugEnv) {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

// logDiagnostics reports every diagnostic at its own level.
func logDiagnostics(log *logrus.Logger, d *diagnostic.Diagnostics) {
	entry := func(diag diagnostic.Diagnostic) *logrus.Entry {
		fields := logrus.Fields{"code": diag.Code}
		if diag.Enum != "" {
			fields["enum"] = diag.Enum
		}

		if diag.Variant != "" {
			fields["variant"] = diag.Variant
		}

		return log.WithFields(fields)
	}

	for _, diag := range d.Infos {
		entry(diag).Info(diag.Message)
	}

	for _, diag := range d.Warnings {
		entry(diag).Warn(diag.String())
	}

	for _, diag := range d.Errors {
		entry(diag).Error(diag.String())
	}
}
