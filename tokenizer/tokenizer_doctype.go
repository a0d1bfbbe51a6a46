package tokenizer

// This file implements the DOCTYPE sub-machine. Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's doctypeStateParser
// family; the PUBLIC/SYSTEM keyword tests reuse the same
// StepBack-then-peek-then-Seek idiom markupDeclarationOpenState uses
// in tokenizer_tag.go.

func init() {
	dispatch[stDoctype] = (*Tokenizer).doctypeState
	dispatch[stBeforeDoctypeName] = (*Tokenizer).beforeDoctypeNameState
	dispatch[stDoctypeName] = (*Tokenizer).doctypeNameState
	dispatch[stAfterDoctypeName] = (*Tokenizer).afterDoctypeNameState
	dispatch[stAfterDoctypePublicKeyword] = (*Tokenizer).afterDoctypePublicKeywordState
	dispatch[stBeforeDoctypePublicIdentifier] = (*Tokenizer).beforeDoctypePublicIdentifierState
	dispatch[stDoctypePublicIdentifierDoubleQuoted] = (*Tokenizer).doctypePublicIdentifierDoubleQuotedState
	dispatch[stDoctypePublicIdentifierSingleQuoted] = (*Tokenizer).doctypePublicIdentifierSingleQuotedState
	dispatch[stAfterDoctypePublicIdentifier] = (*Tokenizer).afterDoctypePublicIdentifierState
	dispatch[stBetweenDoctypePublicAndSystemIdentifiers] = (*Tokenizer).betweenDoctypePublicAndSystemIdentifiersState
	dispatch[stAfterDoctypeSystemKeyword] = (*Tokenizer).afterDoctypeSystemKeywordState
	dispatch[stBeforeDoctypeSystemIdentifier] = (*Tokenizer).beforeDoctypeSystemIdentifierState
	dispatch[stDoctypeSystemIdentifierDoubleQuoted] = (*Tokenizer).doctypeSystemIdentifierDoubleQuotedState
	dispatch[stDoctypeSystemIdentifierSingleQuoted] = (*Tokenizer).doctypeSystemIdentifierSingleQuotedState
	dispatch[stAfterDoctypeSystemIdentifier] = (*Tokenizer).afterDoctypeSystemIdentifierState
	dispatch[stBogusDoctype] = (*Tokenizer).bogusDoctypeState
}

func (t *Tokenizer) emitDoctype() tokenizerState {
	t.emit(t.b.doctypeToken(t.tagStartPos))
	return stData
}

func (t *Tokenizer) doctypeState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		return true, stBeforeDoctypeName
	}
	if isASCIIWhitespace(r) {
		return false, stBeforeDoctypeName
	}
	if r == '>' {
		return true, stBeforeDoctypeName
	}
	t.reportError(ErrDoctypeUnexpected)
	return true, stBeforeDoctypeName
}

func (t *Tokenizer) beforeDoctypeNameState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeDoctypeName
	case isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		return false, stDoctypeName
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeName(0xFFFD)
		return false, stDoctypeName
	case r == '>':
		t.reportError(ErrDoctypeUnexpected)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.b.writeName(r)
		return false, stDoctypeName
	}
}

func (t *Tokenizer) doctypeNameState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stAfterDoctypeName
	case r == '>':
		next := t.emitDoctype()
		return false, next
	case isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		return false, stDoctypeName
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeName(0xFFFD)
		return false, stDoctypeName
	default:
		t.b.writeName(r)
		return false, stDoctypeName
	}
}

// afterDoctypeNameState peeks for the PUBLIC/SYSTEM keywords the same
// way markupDeclarationOpenState peeks for DOCTYPE/CDATA: step the
// cursor back to the character that reached this state, then test the
// lookahead window before deciding whether to consume it.
func (t *Tokenizer) afterDoctypeNameState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	if isASCIIWhitespace(r) {
		return false, stAfterDoctypeName
	}
	if r == '>' {
		next := t.emitDoctype()
		return false, next
	}
	t.src.StepBack(1)
	if t.src.ContinuesWithInsensitive("PUBLIC") {
		t.src.Seek(t.src.Index() + 6)
		return false, stAfterDoctypePublicKeyword
	}
	if t.src.ContinuesWithInsensitive("SYSTEM") {
		t.src.Seek(t.src.Index() + 6)
		return false, stAfterDoctypeSystemKeyword
	}
	t.src.ReadAdvance()
	t.reportError(ErrDoctypeUnexpectedAfterName)
	t.b.enableForceQuirks()
	return true, stBogusDoctype
}

func (t *Tokenizer) afterDoctypePublicKeywordState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeDoctypePublicIdentifier
	case r == '"':
		t.reportError(ErrDoubleQuotationMarkUnexpected)
		t.b.setPublicIDEmpty()
		return false, stDoctypePublicIdentifierDoubleQuoted
	case r == '\'':
		t.reportError(ErrSingleQuotationMarkUnexpected)
		t.b.setPublicIDEmpty()
		return false, stDoctypePublicIdentifierSingleQuoted
	case r == '>':
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) beforeDoctypePublicIdentifierState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeDoctypePublicIdentifier
	case r == '"':
		t.b.setPublicIDEmpty()
		return false, stDoctypePublicIdentifierDoubleQuoted
	case r == '\'':
		t.b.setPublicIDEmpty()
		return false, stDoctypePublicIdentifierSingleQuoted
	case r == '>':
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) doctypePublicIdentifierDoubleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch r {
	case '"':
		return false, stAfterDoctypePublicIdentifier
	case 0:
		t.reportError(ErrNull)
		t.b.writePublicID(0xFFFD)
		return false, stDoctypePublicIdentifierDoubleQuoted
	case '>':
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.b.writePublicID(r)
		return false, stDoctypePublicIdentifierDoubleQuoted
	}
}

func (t *Tokenizer) doctypePublicIdentifierSingleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch r {
	case '\'':
		return false, stAfterDoctypePublicIdentifier
	case 0:
		t.reportError(ErrNull)
		t.b.writePublicID(0xFFFD)
		return false, stDoctypePublicIdentifierSingleQuoted
	case '>':
		t.reportError(ErrDoctypePublicInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.b.writePublicID(r)
		return false, stDoctypePublicIdentifierSingleQuoted
	}
}

func (t *Tokenizer) afterDoctypePublicIdentifierState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBetweenDoctypePublicAndSystemIdentifiers
	case r == '>':
		next := t.emitDoctype()
		return false, next
	case r == '"':
		t.reportError(ErrDoubleQuotationMarkUnexpected)
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierDoubleQuoted
	case r == '\'':
		t.reportError(ErrSingleQuotationMarkUnexpected)
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierSingleQuoted
	default:
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBetweenDoctypePublicAndSystemIdentifiers
	case r == '>':
		next := t.emitDoctype()
		return false, next
	case r == '"':
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierDoubleQuoted
	case r == '\'':
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierSingleQuoted
	default:
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) afterDoctypeSystemKeywordState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeDoctypeSystemIdentifier
	case r == '"':
		t.reportError(ErrDoubleQuotationMarkUnexpected)
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierDoubleQuoted
	case r == '\'':
		t.reportError(ErrSingleQuotationMarkUnexpected)
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierSingleQuoted
	case r == '>':
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeDoctypeSystemIdentifier
	case r == '"':
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierDoubleQuoted
	case r == '\'':
		t.b.setSystemIDEmpty()
		return false, stDoctypeSystemIdentifierSingleQuoted
	case r == '>':
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) doctypeSystemIdentifierDoubleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch r {
	case '"':
		return false, stAfterDoctypeSystemIdentifier
	case 0:
		t.reportError(ErrNull)
		t.b.writeSystemID(0xFFFD)
		return false, stDoctypeSystemIdentifierDoubleQuoted
	case '>':
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.b.writeSystemID(r)
		return false, stDoctypeSystemIdentifierDoubleQuoted
	}
}

func (t *Tokenizer) doctypeSystemIdentifierSingleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch r {
	case '\'':
		return false, stAfterDoctypeSystemIdentifier
	case 0:
		t.reportError(ErrNull)
		t.b.writeSystemID(0xFFFD)
		return false, stDoctypeSystemIdentifierSingleQuoted
	case '>':
		t.reportError(ErrDoctypeSystemInvalid)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	default:
		t.b.writeSystemID(r)
		return false, stDoctypeSystemIdentifierSingleQuoted
	}
}

func (t *Tokenizer) afterDoctypeSystemIdentifierState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.b.enableForceQuirks()
		next := t.emitDoctype()
		return false, next
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stAfterDoctypeSystemIdentifier
	case r == '>':
		next := t.emitDoctype()
		return false, next
	default:
		t.reportError(ErrDoctypeInvalidCharacter)
		return true, stBogusDoctype
	}
}

func (t *Tokenizer) bogusDoctypeState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		next := t.emitDoctype()
		return false, next
	}
	switch r {
	case '>':
		next := t.emitDoctype()
		return false, next
	case 0:
		t.reportError(ErrNull)
		return false, stBogusDoctype
	default:
		return false, stBogusDoctype
	}
}
