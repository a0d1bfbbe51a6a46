package tokenizer

// This file implements character-reference resolution: the shared
// entry point reached from Data, RCData, and every attribute-value
// state whenever '&' is consumed, plus its named/ambiguous/numeric
// branches. Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's
// characterReferenceStateParser family, but the named-reference match
// itself is done as a single LongestPrefix lookup against a peeked
// window rather than gobrowse's per-rune narrowing of a live copy of
// the whole entity map -- entities.go's mapEntityTable exists
// precisely to make that one-shot lookup practical.

// entityMaxLen bounds how many runes namedCharacterReferenceState
// peeks ahead before giving up on a named match: the longest named
// character reference in the WHATWG dictionary this package's
// EntityTable contract is modeled on is 31 characters long.
const entityMaxLen = 31

func init() {
	dispatch[stCharacterReference] = (*Tokenizer).characterReferenceState
	dispatch[stNamedCharacterReference] = (*Tokenizer).namedCharacterReferenceState
	dispatch[stAmbiguousAmpersand] = (*Tokenizer).ambiguousAmpersandState
	dispatch[stNumericCharacterReference] = (*Tokenizer).numericCharacterReferenceState
	dispatch[stHexadecimalCharacterReferenceStart] = (*Tokenizer).hexadecimalCharacterReferenceStartState
	dispatch[stDecimalCharacterReferenceStart] = (*Tokenizer).decimalCharacterReferenceStartState
	dispatch[stHexadecimalCharacterReference] = (*Tokenizer).hexadecimalCharacterReferenceState
	dispatch[stDecimalCharacterReference] = (*Tokenizer).decimalCharacterReferenceState
	dispatch[stNumericCharacterReferenceEnd] = (*Tokenizer).numericCharacterReferenceEndState
}

// isCharRefAttrContext reports whether the character reference under
// construction will end up inside an attribute value, per the
// returnState it will resume once resolved.
func (t *Tokenizer) isCharRefAttrContext() bool {
	switch t.returnState {
	case stAttributeValueDoubleQuoted, stAttributeValueSingleQuoted, stAttributeValueUnquoted:
		return true
	default:
		return false
	}
}

// flushTempAsChars and emitResolvedString both route their argument to
// either the attribute value under construction or the ordinary text
// run, depending on where the character reference started.
func (t *Tokenizer) flushTempAsChars() {
	t.emitResolvedString(t.b.temp())
}

func (t *Tokenizer) emitResolvedString(s string) {
	if t.isCharRefAttrContext() {
		for _, r := range s {
			t.b.writeAttrValue(r)
		}
	} else {
		t.appendTextString(s)
	}
	t.b.resetTemp()
}

func (t *Tokenizer) characterReferenceState(r rune, eof bool) (bool, tokenizerState) {
	t.b.resetTemp()
	t.b.writeTemp('&')
	if !eof && isASCIIAlphanumeric(r) {
		return true, stNamedCharacterReference
	}
	if !eof && r == '#' {
		t.b.writeTemp('#')
		return false, stNumericCharacterReference
	}
	t.flushTempAsChars()
	return true, t.returnState
}

func (t *Tokenizer) namedCharacterReferenceState(r rune, eof bool) (bool, tokenizerState) {
	t.src.StepBack(1)
	window := t.src.PeekN(entityMaxLen)
	matched, value, ok := t.entities.LongestPrefix(window)
	if !ok {
		t.src.ReadAdvance()
		t.flushTempAsChars()
		return true, stAmbiguousAmpersand
	}
	matchedStr := window[:matched]
	t.src.Seek(t.src.Index() + matched)
	endsWithSemicolon := matchedStr[len(matchedStr)-1] == ';'

	if !endsWithSemicolon && t.isCharRefAttrContext() {
		peekNext := t.src.PeekN(1)
		if len(peekNext) > 0 {
			nr := rune(peekNext[0])
			if nr == '=' || isASCIIAlphanumeric(nr) {
				if nr == '=' {
					t.reportError(ErrAttributeEqualsFound)
				}
				for _, ch := range matchedStr {
					t.b.writeTemp(ch)
				}
				t.flushTempAsChars()
				return false, t.returnState
			}
		}
	}

	if !endsWithSemicolon {
		t.reportError(ErrNotTerminated)
	}
	t.emitResolvedString(value)
	return false, t.returnState
}

// ambiguousAmpersandState consumes an unmatched run of alphanumerics
// that followed '&' as literal text. A trailing ';' here has no
// dedicated error code in the taxonomy this package uses, so unlike
// every other reconsume branch it is treated the same as any other
// terminator instead of forcing a report.
func (t *Tokenizer) ambiguousAmpersandState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIAlphanumeric(r) {
		if t.isCharRefAttrContext() {
			t.b.writeAttrValue(r)
		} else {
			t.appendText(r)
		}
		return false, stAmbiguousAmpersand
	}
	return true, t.returnState
}

func (t *Tokenizer) numericCharacterReferenceState(r rune, eof bool) (bool, tokenizerState) {
	t.b.charRefCode = 0
	if !eof && (r == 'x' || r == 'X') {
		t.b.writeTemp(r)
		return false, stHexadecimalCharacterReferenceStart
	}
	return true, stDecimalCharacterReferenceStart
}

func (t *Tokenizer) hexadecimalCharacterReferenceStartState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIHexDigit(r) {
		return true, stHexadecimalCharacterReference
	}
	t.reportError(ErrWrongNumber)
	t.flushTempAsChars()
	return true, t.returnState
}

func (t *Tokenizer) decimalCharacterReferenceStartState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIDigit(r) {
		return true, stDecimalCharacterReference
	}
	t.reportError(ErrWrongNumber)
	t.flushTempAsChars()
	return true, t.returnState
}

func (t *Tokenizer) hexadecimalCharacterReferenceState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIDigit(r):
		t.b.charRefCode = t.b.charRefCode*16 + int(r-'0')
		return false, stHexadecimalCharacterReference
	case !eof && r >= 'a' && r <= 'f':
		t.b.charRefCode = t.b.charRefCode*16 + int(r-'a') + 10
		return false, stHexadecimalCharacterReference
	case !eof && r >= 'A' && r <= 'F':
		t.b.charRefCode = t.b.charRefCode*16 + int(r-'A') + 10
		return false, stHexadecimalCharacterReference
	case !eof && r == ';':
		return false, stNumericCharacterReferenceEnd
	default:
		t.reportError(ErrSemicolonMissing)
		return true, stNumericCharacterReferenceEnd
	}
}

func (t *Tokenizer) decimalCharacterReferenceState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIDigit(r):
		t.b.charRefCode = t.b.charRefCode*10 + int(r-'0')
		return false, stDecimalCharacterReference
	case !eof && r == ';':
		return false, stNumericCharacterReferenceEnd
	default:
		t.reportError(ErrSemicolonMissing)
		return true, stNumericCharacterReferenceEnd
	}
}

// numericCharacterReferenceEndState resolves the accumulated code
// point and reconsumes the terminator in returnState. No explicit
// source rewind is needed here: reconsume=true hands the same (r, eof)
// this state was invoked with straight to returnState's handler.
func (t *Tokenizer) numericCharacterReferenceEndState(r rune, eof bool) (bool, tokenizerState) {
	result, code, hasError := resolveNumericReference(t.b.charRefCode)
	if hasError {
		t.reportError(code)
	}
	t.b.resetTemp()
	t.emitResolvedString(string(result))
	return true, t.returnState
}
