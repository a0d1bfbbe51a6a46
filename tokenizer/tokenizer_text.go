package tokenizer

// This file implements the RCData, RawText, and Plaintext content
// families. emitCurrentTag switches into Plaintext after a plaintext
// start tag; RCData and RawText are entered only when a caller writes
// ParseMode (see resyncParseMode). Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's rcDataStateParser
// and rawTextStateParser pairs, which are structurally identical
// aside from which character class permits character references.

func init() {
	dispatch[stRCData] = (*Tokenizer).rcDataState
	dispatch[stRawText] = (*Tokenizer).rawTextState
	dispatch[stPlaintext] = (*Tokenizer).plaintextState
	dispatch[stRCDataLessThanSign] = (*Tokenizer).rcDataLessThanSignState
	dispatch[stRCDataEndTagOpen] = (*Tokenizer).rcDataEndTagOpenState
	dispatch[stRCDataEndTagName] = (*Tokenizer).rcDataEndTagNameState
	dispatch[stRawTextLessThanSign] = (*Tokenizer).rawTextLessThanSignState
	dispatch[stRawTextEndTagOpen] = (*Tokenizer).rawTextEndTagOpenState
	dispatch[stRawTextEndTagName] = (*Tokenizer).rawTextEndTagNameState
}

func (t *Tokenizer) rcDataState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stRCData
	}
	switch r {
	case '&':
		t.returnState = stRCData
		return false, stCharacterReference
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stRCDataLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stRCData
	default:
		t.appendText(r)
		return false, stRCData
	}
}

func (t *Tokenizer) rawTextState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stRawText
	}
	switch r {
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stRawTextLessThanSign
	case 0:
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stRawText
	default:
		t.appendText(r)
		return false, stRawText
	}
}

func (t *Tokenizer) plaintextState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stPlaintext
	}
	if r == 0 {
		t.reportError(ErrNull)
		t.appendText(0xFFFD)
		return false, stPlaintext
	}
	t.appendText(r)
	return false, stPlaintext
}

func (t *Tokenizer) rcDataLessThanSignState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		t.b.resetTemp()
		return false, stRCDataEndTagOpen
	}
	t.appendText('<')
	return true, stRCData
}

func (t *Tokenizer) rcDataEndTagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIILetter(r) {
		t.b.reset()
		t.b.kind = endTagKind
		return true, stRCDataEndTagName
	}
	t.appendTextString("</")
	return true, stRCData
}

// rcDataEndTagNameState (and its RawText sibling below) accumulate a
// candidate end-tag name into the token builder while tentatively
// treating it as text; the accumulated text is only committed as a
// real end tag if it turns out to be "appropriate" (matches the most
// recently emitted start tag) and is immediately followed by
// whitespace, '/', or '>'. Otherwise every character consumed so far,
// including the "</" that opened this state, is flushed back out as
// literal text.
func (t *Tokenizer) rcDataEndTagNameState(r rune, eof bool) (bool, tokenizerState) {
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
		return false, stRCDataEndTagName
	case !eof && isASCIILower(r):
		t.b.writeName(r)
		t.b.writeTemp(r)
		return false, stRCDataEndTagName
	default:
		t.appendTextString("</")
		t.appendTextString(t.b.temp())
		return true, stRCData
	}
}

func (t *Tokenizer) rawTextLessThanSignState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == '/' {
		t.b.resetTemp()
		return false, stRawTextEndTagOpen
	}
	t.appendText('<')
	return true, stRawText
}

func (t *Tokenizer) rawTextEndTagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && isASCIILetter(r) {
		t.b.reset()
		t.b.kind = endTagKind
		return true, stRawTextEndTagName
	}
	t.appendTextString("</")
	return true, stRawText
}

func (t *Tokenizer) rawTextEndTagNameState(r rune, eof bool) (bool, tokenizerState) {
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
		return false, stRawTextEndTagName
	case !eof && isASCIILower(r):
		t.b.writeName(r)
		t.b.writeTemp(r)
		return false, stRawTextEndTagName
	default:
		t.appendTextString("</")
		t.appendTextString(t.b.temp())
		return true, stRawText
	}
}
