package tokenizer

import "testing"

func TestIsASCIIWhitespace(t *testing.T) {
	for _, r := range []rune{'\t', '\n', '\f', '\r', ' '} {
		if !isASCIIWhitespace(r) {
			t.Errorf("isASCIIWhitespace(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '0', '\v'} {
		if isASCIIWhitespace(r) {
			t.Errorf("isASCIIWhitespace(%q) = true, want false", r)
		}
	}
}

func TestToASCIILower(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'A', 'a'},
		{'Z', 'z'},
		{'a', 'a'},
		{'0', '0'},
		{0x00C4, 0x00C4}, // non-ASCII left untouched
	}
	for _, tt := range tests {
		if got := toASCIILower(tt.in); got != tt.want {
			t.Errorf("toASCIILower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSurrogate(t *testing.T) {
	if !isSurrogate(0xD800) || !isSurrogate(0xDFFF) {
		t.Error("surrogate range boundaries not detected")
	}
	if isSurrogate(0xD7FF) || isSurrogate(0xE000) {
		t.Error("false positive outside surrogate range")
	}
}

func TestIsNonCharacter(t *testing.T) {
	for _, r := range []rune{0xFFFE, 0xFFFF, 0xFDD0, 0xFDEF, 0x10FFFE} {
		if !isNonCharacter(r) {
			t.Errorf("isNonCharacter(%#x) = false, want true", r)
		}
	}
	if isNonCharacter('a') {
		t.Error("isNonCharacter('a') = true, want false")
	}
}
