// Package logging builds the diagnostic logger. Diagnostics are kept off
// the operator's transcript: they go to their own writer (stderr in
// production) and default to warnings only.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	return l
}

// ParseLevel accepts logrus level names and the numeric verbosities 0-5
// (0 silent, 5 trace).
func ParseLevel(v string) (logrus.Level, error) {
	switch v {
	case "0", "silent":
		return logrus.PanicLevel, nil
	case "1":
		return logrus.ErrorLevel, nil
	case "2":
		return logrus.WarnLevel, nil
	case "3":
		return logrus.InfoLevel, nil
	case "4":
		return logrus.DebugLevel, nil
	case "5":
		return logrus.TraceLevel, nil
	}

	lvl, err := logrus.ParseLevel(v)
	if err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", v, err)
	}
	return lvl, nil
}
