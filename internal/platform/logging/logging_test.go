package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"0":       logrus.PanicLevel,
		"silent":  logrus.PanicLevel,
		"2":       logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"debug":   logrus.DebugLevel,
		"5":       logrus.TraceLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel(loud) succeeded")
	}
}

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logrus.InfoLevel)

	l.Debug("hidden")
	l.WithField("station", 3).Info("leg completed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "station=3") || !strings.Contains(out, "leg completed") {
		t.Fatalf("unexpected output %q", out)
	}
}
