package console

import (
	"strconv"
	"strings"
	"subway-simulation/internal/domain"
)

// Input is one tokenized command line.
//
// When the last token is a finite number it becomes Value and the tokens before it
// form Verb ("set rate 2" is verb "set rate", value 2). Otherwise the whole
// line is the verb and HasValue is false.
type Input struct {
	Raw      string
	Verb     string
	Value    float64
	HasValue bool
}

// Parse normalizes case and whitespace and splits off the trailing value.
func Parse(line string) Input {
	in := Input{Raw: line}

	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return in
	}

	if len(fields) > 1 {
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err == nil && domain.IsFinite(v) {
			in.Verb = strings.Join(fields[:len(fields)-1], " ")
			in.Value = v
			in.HasValue = true
			return in
		}
	}

	in.Verb = strings.Join(fields, " ")
	return in
}
