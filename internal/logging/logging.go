// Package logging builds the zerolog loggers used by the vector tooling.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by every logger in the module.
const (
	FieldComponent = "component"
	FieldType      = "type"
	FieldCase      = "case"
	FieldRoot      = "root"
	FieldSize      = "size"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldImpl      = "impl"
)

// NewLogger returns a console logger tagged with the component name.
func NewLogger(component string) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	return zerolog.New(output).With().Timestamp().Str(FieldComponent, component).Logger()
}

// SetupGlobalLogger sets the global level from its name ("debug", "info", ...).
func SetupGlobalLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
