package utils

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseColor(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		input    string
		expected int
		valid    bool
	}{
		{input: "#0099ff", expected: 0x0099ff, valid: true},
		{input: "ffffff", expected: 0xffffff, valid: true},
		{input: " #000000 ", expected: 0, valid: true},
		{input: "#fff"},
		{input: "blue"},
		{input: "#gggggg"},
	}

	for _, test := range tests {
		actual, err := ParseColor(test.input)
		if !test.valid {
			c.Assert(err, qt.IsNotNil, qt.Commentf("input %q", test.input))
			continue
		}
		c.Assert(err, qt.IsNil)
		c.Assert(actual, qt.Equals, test.expected)
	}
}
