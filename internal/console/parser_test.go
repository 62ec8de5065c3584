package console

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want Input
	}{
		{line: "start", want: Input{Verb: "start"}},
		{line: "  STOP  ", want: Input{Verb: "stop"}},
		{line: "set rate 2", want: Input{Verb: "set rate", Value: 2, HasValue: true}},
		{line: "Set   Subway_Speed\t0.7", want: Input{Verb: "set subway_speed", Value: 0.7, HasValue: true}},
		{line: "goto 4.4", want: Input{Verb: "goto", Value: 4.4, HasValue: true}},
		{line: "goto -1", want: Input{Verb: "goto", Value: -1, HasValue: true}},
		{line: "goto 0", want: Input{Verb: "goto", Value: 0, HasValue: true}},
		{line: "goto five", want: Input{Verb: "goto five"}},
		{line: "goto nan", want: Input{Verb: "goto nan"}},
		{line: "set rate", want: Input{Verb: "set rate"}},
		{line: "42", want: Input{Verb: "42"}},
		{line: "", want: Input{}},
		{line: "   ", want: Input{}},
	}

	for _, c := range cases {
		got := Parse(c.line)
		c.want.Raw = c.line
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.line, diff)
		}
	}
}

func TestParseNonFiniteValueIsNotAValue(t *testing.T) {
	for _, line := range []string{"goto inf", "set rate infinity", "set subway_speed -Inf", "set stations +Inf"} {
		got := Parse(line)
		if got.HasValue {
			t.Errorf("Parse(%q) took %v as a value", line, got.Value)
		}
		if want := strings.ToLower(line); got.Verb != want {
			t.Errorf("Parse(%q) verb = %q, want %q", line, got.Verb, want)
		}
	}
}
