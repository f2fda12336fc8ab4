package checklist

import (
	"strings"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected RGB
		ok       bool
	}{
		{"123456", RGB{R: 0x56, G: 0x34, B: 0x12}, true},
		{"fedcba", RGB{R: 0xba, G: 0xdc, B: 0xfe}, true},
		{"FeDcBa", RGB{R: 0xba, G: 0xdc, B: 0xfe}, true},
		{"a857a8", RGB{R: 0xa8, G: 0x57, B: 0xa8}, true},
		{"000000", RGB{}, true},
		{"ffffff", RGB{R: 0xff, G: 0xff, B: 0xff}, true},
		{"", RGB{}, false},
		{"12345", RGB{}, false},
		{"1234567", RGB{}, false},
		{"12345g", RGB{}, false},
		{"#12345", RGB{}, false},
		{" 123456", RGB{}, false},
	}

	for _, test := range tests {
		got, ok := ParseHexColor(test.input)
		if ok != test.ok {
			t.Errorf("ParseHexColor(%q) ok = %v; want %v", test.input, ok, test.ok)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseHexColor(%q) = %+v; want %+v", test.input, got, test.expected)
		}
	}
}

func TestRGB_Hex_RoundTrip(t *testing.T) {
	for _, s := range []string{"123456", "fedcba", "FEDCBA", "a857a8", "000000", "0F0f0F"} {
		c, ok := ParseHexColor(s)
		if !ok {
			t.Fatalf("ParseHexColor(%q) failed", s)
		}
		if got := c.Hex(); got != strings.ToLower(s) {
			t.Errorf("Hex() = %q; want %q", got, strings.ToLower(s))
		}
	}
}
