package tokenizer

// Character classes used throughout the state machine. These mirror the
// WHATWG "ASCII x" predicates (section 8.2.4 uses them dozens of times) and
// are kept as free functions, the same shape gobrowse used for
// isNonCharacter/isC0Control/isControl/isASCIIWhitespace/isSurrogate in
// tokenizer.go.

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIILetter(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r)
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\u0009', '\u000A', '\u000C', '\u000D', ' ':
		return true
	default:
		return false
	}
}

func isC0Control(r rune) bool {
	return r >= 0x00 && r <= 0x1F
}

func isControl(r rune) bool {
	return isC0Control(r) || (r >= 0x7F && r <= 0x9F)
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func isNonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF,
		0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF,
		0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF,
		0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF,
		0x10FFFE, 0x10FFFF:
		return true
	default:
		return false
	}
}

// toASCIILower lowercases a single ASCII upper-case letter, leaving
// everything else (including non-ASCII code points) untouched: other
// Unicode in names is preserved verbatim but not case-folded.
func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}
