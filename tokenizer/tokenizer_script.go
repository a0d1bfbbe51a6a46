package tokenizer

// This file implements the script-data content family: plain script
// data plus its escaped and double-escaped nesting levels, the most
// intricate branch of the tokenizer's state graph. Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's
// scriptDataStateParser family, which threads the same three nesting
// levels through an almost identical sequence of LessThanSign/
// EndTagOpen/EndTagName/EscapeStart/Escaped/DoubleEscaped states.

func init() {
	dispatch[stScriptData] = (*Tokenizer).scriptDataState
	dispatch[stScriptDataLessThanSign] = (*Tokenizer).scriptDataLessThanSignState
	dispatch[stScriptDataEndTagOpen] = (*Tokenizer).scriptDataEndTagOpenState
	dispatch[stScriptDataEndTagName] = (*Tokenizer).scriptDataEndTagNameState
	dispatch[stScriptDataEscapeStart] = (*Tokenizer).scriptDataEscapeStartState
	dispatch[stScriptDataEscapeStartDash] = (*Tokenizer).scriptDataEscapeStartDashState
	dispatch[stScriptDataEscaped] = (*Tokenizer).scriptDataEscapedState
	dispatch[stScriptDataEscapedDash] = (*Tokenizer).scriptDataEscapedDashState
	dispatch[stScriptDataEscapedDashDash] = (*Tokenizer).scriptDataEscapedDashDashState
	dispatch[stScriptDataEscapedLessThanSign] = (*Tokenizer).scriptDataEscapedLessThanSignState
	dispatch[stScriptDataEscapedEndTagOpen] = (*Tokenizer).scriptDataEscapedEndTagOpenState
	dispatch[stScriptDataEscapedEndTagName] = (*Tokenizer).scriptDataEscapedEndTagNameState
	dispatch[stScriptDataDoubleEscapeStart] = (*Tokenizer).scriptDataDoubleEscapeStartState
	dispatch[stScriptDataDoubleEscaped] = (*Tokenizer).scriptDataDoubleEscapedState
	dispatch[stScriptDataDoubleEscapedDash] = (*Tokenizer).scriptDataDoubleEscapedDashState
	dispatch[stScriptDataDoubleEscapedDashDash] = (*Tokenizer).scriptDataDoubleEscapedDashDashState
	dispatch[stScriptDataDoubleEscapedLessThanSign] = (*Tokenizer).scriptDataDoubleEscapedLessThanSignState
	dispatch[stScriptDataDoubleEscapeEnd] = (*Tokenizer).scriptDataDoubleEscapeEndState
}

func (t *Tokenizer) scriptDataState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptData
	}
	switch r {
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stScriptDataLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptData
	default:
		t.appendText(r)
		return false, stScriptData
	}
}

func (t *Tokenizer) scriptDataLessThanSignState(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case '/':
			t.b.resetTemp()
			return false, stScriptDataEndTagOpen
		case '!':
			t.appendTextString("<!")
			return false, stScriptDataEscapeStart
		}
	}
	t.appendText('<')
	return true, stScriptData
}

func (t *Tokenizer) scriptDataEndTagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIILetter(r) {
		t.b.reset()
		t.b.kind = endTagKind
		return true, stScriptDataEndTagName
	}
	t.appendTextString("</")
	return true, stScriptData
}

func (t *Tokenizer) scriptDataEndTagNameState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIWhitespace(r) && t.isApprEndTag():
		return false, stBeforeAttributeName
	case !eof && r == '/' && t.isApprEndTag():
		return false, stSelfClosingStartTag
	case !eof && r == '>' && t.isApprEndTag():
		next := t.emitCurrentTag()
		return false, next
	case !eof && isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTemp(r)
		return false, stScriptDataEndTagName
	case !eof && isASCIILower(r):
		t.b.writeName(r)
		t.b.writeTemp(r)
		return false, stScriptDataEndTagName
	default:
		t.appendTextString("</")
		t.appendTextString(t.b.name.String())
		return true, stScriptData
	}
}

func (t *Tokenizer) scriptDataEscapeStartState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		t.appendText('-')
		return false, stScriptDataEscapeStartDash
	}
	return true, stScriptData
}

func (t *Tokenizer) scriptDataEscapeStartDashState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '-' {
		t.appendText('-')
		return false, stScriptDataEscapedDashDash
	}
	return true, stScriptData
}

func (t *Tokenizer) scriptDataEscapedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataEscaped
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataEscapedDash
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stScriptDataEscapedLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataEscaped
	default:
		t.appendText(r)
		return false, stScriptDataEscaped
	}
}

func (t *Tokenizer) scriptDataEscapedDashState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataEscapedDash
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataEscapedDashDash
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stScriptDataEscapedLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataEscaped
	default:
		t.appendText(r)
		return false, stScriptDataEscaped
	}
}

func (t *Tokenizer) scriptDataEscapedDashDashState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataEscapedDashDash
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataEscapedDashDash
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stScriptDataEscapedLessThanSign
	case '>':
		t.appendText('>')
		return false, stScriptData
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataEscaped
	default:
		t.appendText(r)
		return false, stScriptDataEscaped
	}
}

func (t *Tokenizer) scriptDataEscapedLessThanSignState(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case r == '/':
			t.b.resetTemp()
			return false, stScriptDataEscapedEndTagOpen
		case isASCIILetter(r):
			t.appendText('<')
			t.b.resetTemp()
			return true, stScriptDataDoubleEscapeStart
		}
	}
	t.appendText('<')
	return true, stScriptDataEscaped
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIILetter(r) {
		t.b.reset()
		t.b.kind = endTagKind
		return true, stScriptDataEscapedEndTagName
	}
	t.appendTextString("</")
	return true, stScriptDataEscaped
}

func (t *Tokenizer) scriptDataEscapedEndTagNameState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIWhitespace(r) && t.isApprEndTag():
		return false, stBeforeAttributeName
	case !eof && r == '/' && t.isApprEndTag():
		return false, stSelfClosingStartTag
	case !eof && r == '>' && t.isApprEndTag():
		next := t.emitCurrentTag()
		return false, next
	case !eof && isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		t.b.writeTemp(r)
		return false, stScriptDataEscapedEndTagName
	case !eof && isASCIILower(r):
		t.b.writeName(r)
		t.b.writeTemp(r)
		return false, stScriptDataEscapedEndTagName
	default:
		t.appendTextString("</")
		t.appendTextString(t.b.name.String())
		return true, stScriptDataEscaped
	}
}

// scriptDataDoubleEscapeStartState watches the accumulated temp buffer
// against the literal string "script" to decide, once a delimiter
// character ends the run, whether double-escaping actually began.
func (t *Tokenizer) scriptDataDoubleEscapeStartState(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			t.appendText(r)
			if t.b.temp() == "script" {
				return false, stScriptDataDoubleEscaped
			}
			return false, stScriptDataEscaped
		case isASCIIUpper(r):
			t.b.writeTemp(toASCIILower(r))
			t.appendText(r)
			return false, stScriptDataDoubleEscapeStart
		case isASCIILower(r):
			t.b.writeTemp(r)
			t.appendText(r)
			return false, stScriptDataDoubleEscapeStart
		}
	}
	return true, stScriptDataEscaped
}

func (t *Tokenizer) scriptDataDoubleEscapedState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataDoubleEscaped
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataDoubleEscapedDash
	case '<':
		t.appendText('<')
		return false, stScriptDataDoubleEscapedLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataDoubleEscaped
	default:
		t.appendText(r)
		return false, stScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataDoubleEscapedDash
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataDoubleEscapedDashDash
	case '<':
		t.appendText('<')
		return false, stScriptDataDoubleEscapedLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataDoubleEscaped
	default:
		t.appendText(r)
		return false, stScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stScriptDataDoubleEscapedDashDash
	}
	switch r {
	case '-':
		t.appendText('-')
		return false, stScriptDataDoubleEscapedDashDash
	case '<':
		t.appendText('<')
		return false, stScriptDataDoubleEscapedLessThanSign
	case '>':
		t.appendText('>')
		return false, stScriptData
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stScriptDataDoubleEscaped
	default:
		t.appendText(r)
		return false, stScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		t.b.resetTemp()
		t.appendText('/')
		return false, stScriptDataDoubleEscapeEnd
	}
	return true, stScriptDataDoubleEscaped
}

// scriptDataDoubleEscapeEndState mirrors DoubleEscapeStart but flips
// which state it falls back to: this time watching for "script" to
// exit double-escaping back to plain escaped script data.
func (t *Tokenizer) scriptDataDoubleEscapeEndState(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch {
		case isASCIIWhitespace(r) || r == '/' || r == '>':
			t.appendText(r)
			if t.b.temp() == "script" {
				return false, stScriptDataEscaped
			}
			return false, stScriptDataDoubleEscaped
		case isASCIIUpper(r):
			t.b.writeTemp(toASCIILower(r))
			t.appendText(r)
			return false, stScriptDataDoubleEscapeEnd
		case isASCIILower(r):
			t.b.writeTemp(r)
			t.appendText(r)
			return false, stScriptDataDoubleEscapeEnd
		}
	}
	return true, stScriptDataDoubleEscaped
}
