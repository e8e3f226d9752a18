package ansipixels

import (
	"testing"
)

var testCases = []struct {
	name     string
	input    string
	expected string
}{
	{
		"NoEscapeSequence",
		"Hello World, life is good, isn't it - is this long enough?",
		"Hello World, life is good, isn't it - is this long enough?",
	},
	{
		"UnterminatedEscapeSequence-1",
		"Hello World\x1b[1234",
		"Hello World",
	},
	{
		"UnterminatedEscapeSequence-2",
		"Hello World\x1b[",
		"Hello World",
	},
	{
		"ShortestEscapeSequenceAtEnd",
		"Hello Woooo\x1b[m",
		"Hello Woooo",
	},
	{
		"ShortestEscapeSequence",
		"\x1b[m",
		"",
	},
	{
		"SingleEscapeSequence",
		"Hello \x1b[31mWorld\x1b[0m cruel.",
		"Hello World cruel.",
	},
	{
		"CardColors",
		WhiteBG + Red + "A♥" + Reset + " " + WhiteBG + Black + "10♠" + Reset,
		"A♥ 10♠",
	},
}

func TestAnsiClean(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := AnsiClean([]byte(tc.input))
			if string(actual) != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, actual)
			}
		})
	}
}

func TestScreenWidth(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"", 0},
		{"Ann - 21 points", 15},
		{Red + "A♥" + Reset, 2},
		{"🎉 win", 6},
		{"你好", 4},
	}
	for _, tt := range tests {
		if got := ScreenWidth(tt.input); got != tt.width {
			t.Errorf("ScreenWidth(%q) = %d, want %d", tt.input, got, tt.width)
		}
	}
}

func BenchmarkAnsiClean(b *testing.B) {
	for _, tc := range testCases {
		inp := []byte(tc.input)
		b.Run(tc.name, func(b *testing.B) {
			for range b.N {
				AnsiClean(inp)
			}
		})
	}
}
