// Package logging builds the logrus logger shared by the command line front end.
package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Supported log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrFormat is returned for a log format other than FormatText or FormatJSON.
var ErrFormat = errors.New("logging: unknown log format")

// ErrLevel is returned for a level logrus cannot parse.
var ErrLevel = errors.New("logging: unknown log level")

// New returns a logger writing to out at the given level ("debug", "info",
// ...) and format (FormatText or FormatJSON).
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLevel, level)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	switch format {
	case FormatText, "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return l, nil
}
