package tokenizer

// This file implements the tag-open family and the attribute
// sub-machine: everything reachable directly from Data state's '<'
// that is not comment, doctype, CDATA, or character-reference
// handling (those live in their own files). Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's dataStateParser,
// tagOpenStateParser, tagNameStateParser and the attribute family of
// state parsers, generalized to the coalesced-text/error-channel
// design this package uses throughout.

func init() {
	dispatch[stData] = (*Tokenizer).dataState
	dispatch[stTagOpen] = (*Tokenizer).tagOpenState
	dispatch[stEndTagOpen] = (*Tokenizer).endTagOpenState
	dispatch[stTagName] = (*Tokenizer).tagNameState
	dispatch[stSelfClosingStartTag] = (*Tokenizer).selfClosingStartTagState
	dispatch[stBogusComment] = (*Tokenizer).bogusCommentState
	dispatch[stMarkupDeclarationOpen] = (*Tokenizer).markupDeclarationOpenState
	dispatch[stBeforeAttributeName] = (*Tokenizer).beforeAttributeNameState
	dispatch[stAttributeName] = (*Tokenizer).attributeNameState
	dispatch[stAfterAttributeName] = (*Tokenizer).afterAttributeNameState
	dispatch[stBeforeAttributeValue] = (*Tokenizer).beforeAttributeValueState
	dispatch[stAttributeValueDoubleQuoted] = (*Tokenizer).attributeValueDoubleQuotedState
	dispatch[stAttributeValueSingleQuoted] = (*Tokenizer).attributeValueSingleQuotedState
	dispatch[stAttributeValueUnquoted] = (*Tokenizer).attributeValueUnquotedState
	dispatch[stAfterAttributeValueQuoted] = (*Tokenizer).afterAttributeValueQuotedState
}

func (t *Tokenizer) dataState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.endOfFileToken(t.curCharPos))
		return false, stData
	}
	switch r {
	case '&':
		t.returnState = stData
		return false, stCharacterReference
	case '<':
		t.tagStartPos = t.curCharPos
		return false, stTagOpen
	case 0:
		t.reportError(ErrNull)
		t.appendText(r)
		return false, stData
	default:
		t.appendText(r)
		return false, stData
	}
}

func (t *Tokenizer) tagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.appendText('<')
		return true, stData
	}
	switch {
	case r == '!':
		return false, stMarkupDeclarationOpen
	case r == '/':
		return false, stEndTagOpen
	case isASCIILetter(r):
		t.b.reset()
		t.b.kind = startTagKind
		return true, stTagName
	case r == '?':
		t.reportError(ErrBogusComment)
		t.b.reset()
		return true, stBogusComment
	default:
		t.reportError(ErrAmbiguousOpenTag)
		t.appendText('<')
		return true, stData
	}
}

func (t *Tokenizer) endTagOpenState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		t.appendTextString("</")
		return true, stData
	}
	switch {
	case isASCIILetter(r):
		t.b.reset()
		t.b.kind = endTagKind
		return true, stTagName
	case r == '>':
		t.reportError(ErrTagClosedWrong)
		return false, stData
	default:
		t.reportError(ErrBogusComment)
		t.b.reset()
		return true, stBogusComment
	}
}

func (t *Tokenizer) tagNameState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		return true, stData
	}
	switch {
	case isASCIIWhitespace(r):
		return false, stBeforeAttributeName
	case r == '/':
		return false, stSelfClosingStartTag
	case r == '>':
		next := t.emitCurrentTag()
		return false, next
	case isASCIIUpper(r):
		t.b.writeName(toASCIILower(r))
		return false, stTagName
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeName(0xFFFD)
		return false, stTagName
	default:
		t.b.writeName(r)
		return false, stTagName
	}
}

func (t *Tokenizer) selfClosingStartTagState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		return true, stData
	}
	if r == '>' {
		t.b.enableSelfClosing()
		next := t.emitCurrentTag()
		return false, next
	}
	t.reportError(ErrClosingSlashMisplaced)
	return true, stBeforeAttributeName
}

func (t *Tokenizer) bogusCommentState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.emit(t.b.commentToken(t.tagStartPos))
		return true, stData
	}
	switch r {
	case '>':
		t.emit(t.b.commentToken(t.tagStartPos))
		return false, stData
	case 0:
		t.reportError(ErrNull)
		t.b.writeData(0xFFFD)
		return false, stBogusComment
	default:
		t.b.writeData(r)
		return false, stBogusComment
	}
}

// markupDeclarationOpenState decides between a comment, a doctype, and
// a CDATA section by peeking several characters ahead of the one
// already consumed to reach this state -- steps the source cursor back
// one so the peek starts at that character, mirroring
// _examples/heathj-gobrowse/parser/tokenizer.go's approach of scanning
// PeekN(n) runes directly rather than threading multi-character
// lookahead through the one-rune-at-a-time dispatch loop.
func (t *Tokenizer) markupDeclarationOpenState(r rune, eof bool) (bool, tokenizerState) {
	t.src.StepBack(1)
	if t.src.ContinuesWithSensitive("--") {
		t.src.Seek(t.src.Index() + 2)
		t.b.reset()
		return false, stCommentStart
	}
	if t.src.ContinuesWithInsensitive("DOCTYPE") {
		t.src.Seek(t.src.Index() + 7)
		t.b.reset()
		return false, stDoctype
	}
	if t.AcceptCharacterData && t.src.ContinuesWithSensitive("[CDATA[") {
		t.src.Seek(t.src.Index() + 7)
		t.b.reset()
		return false, stCDataSection
	}
	t.reportError(ErrUndefinedMarkupDeclaration)
	t.b.reset()
	if r == '[' {
		t.b.enableDownlevelRevealed()
	}
	t.src.ReadAdvance()
	return true, stBogusComment
}

// commitCurrentAttr ends the attribute currently under construction,
// reporting *attribute-duplicate-omitted* if it collided with an
// earlier one in the same tag.
func (t *Tokenizer) commitCurrentAttr() {
	if t.b.commitAttribute() {
		t.reportError(ErrAttributeDuplicateOmitted)
	}
}

func (t *Tokenizer) beforeAttributeNameState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIWhitespace(r):
		return false, stBeforeAttributeName
	case eof || r == '/' || r == '>':
		return true, stAfterAttributeName
	case r == '=':
		t.reportError(ErrAttributeNameExpected)
		t.b.writeAttrName(r)
		return false, stAttributeName
	default:
		return true, stAttributeName
	}
}

func (t *Tokenizer) attributeNameState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.commitCurrentAttr()
		return true, stData
	case isASCIIWhitespace(r):
		t.commitCurrentAttr()
		return false, stBeforeAttributeName
	case r == '/':
		t.commitCurrentAttr()
		return false, stSelfClosingStartTag
	case r == '>':
		t.commitCurrentAttr()
		next := t.emitCurrentTag()
		return false, next
	case r == '=':
		return false, stBeforeAttributeValue
	case isASCIIUpper(r):
		t.b.writeAttrName(toASCIILower(r))
		return false, stAttributeName
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeAttrName(0xFFFD)
		return false, stAttributeName
	case r == '"' || r == '\'' || r == '<':
		t.reportError(ErrAttributeNameInvalid)
		t.b.writeAttrName(r)
		return false, stAttributeName
	default:
		t.b.writeAttrName(r)
		return false, stAttributeName
	}
}

func (t *Tokenizer) afterAttributeNameState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, stData
	case isASCIIWhitespace(r):
		return false, stAfterAttributeName
	case r == '/':
		return false, stSelfClosingStartTag
	case r == '=':
		return false, stBeforeAttributeValue
	case r == '>':
		next := t.emitCurrentTag()
		return false, next
	default:
		return true, stAttributeName
	}
}

func (t *Tokenizer) beforeAttributeValueState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case !eof && isASCIIWhitespace(r):
		return false, stBeforeAttributeValue
	case !eof && r == '"':
		return false, stAttributeValueDoubleQuoted
	case !eof && r == '\'':
		return false, stAttributeValueSingleQuoted
	case !eof && r == '>':
		t.reportError(ErrAttributeValueInvalid)
		t.commitCurrentAttr()
		next := t.emitCurrentTag()
		return false, next
	default:
		return true, stAttributeValueUnquoted
	}
}

func (t *Tokenizer) attributeValueDoubleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.reportError(ErrEOF)
		return true, stData
	case r == '"':
		t.commitCurrentAttr()
		return false, stAfterAttributeValueQuoted
	case r == '&':
		t.returnState = stAttributeValueDoubleQuoted
		return false, stCharacterReference
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeAttrValue(0xFFFD)
		return false, stAttributeValueDoubleQuoted
	default:
		t.b.writeAttrValue(r)
		return false, stAttributeValueDoubleQuoted
	}
}

func (t *Tokenizer) attributeValueSingleQuotedState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.reportError(ErrEOF)
		return true, stData
	case r == '\'':
		t.commitCurrentAttr()
		return false, stAfterAttributeValueQuoted
	case r == '&':
		t.returnState = stAttributeValueSingleQuoted
		return false, stCharacterReference
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeAttrValue(0xFFFD)
		return false, stAttributeValueSingleQuoted
	default:
		t.b.writeAttrValue(r)
		return false, stAttributeValueSingleQuoted
	}
}

func (t *Tokenizer) attributeValueUnquotedState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.reportError(ErrEOF)
		return true, stData
	case isASCIIWhitespace(r):
		t.commitCurrentAttr()
		return false, stBeforeAttributeName
	case r == '&':
		t.returnState = stAttributeValueUnquoted
		return false, stCharacterReference
	case r == '>':
		t.commitCurrentAttr()
		next := t.emitCurrentTag()
		return false, next
	case r == 0:
		t.reportError(ErrNull)
		t.b.writeAttrValue(0xFFFD)
		return false, stAttributeValueUnquoted
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.reportError(ErrAttributeValueInvalid)
		t.b.writeAttrValue(r)
		return false, stAttributeValueUnquoted
	default:
		t.b.writeAttrValue(r)
		return false, stAttributeValueUnquoted
	}
}

func (t *Tokenizer) afterAttributeValueQuotedState(r rune, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.reportError(ErrEOF)
		return true, stData
	case isASCIIWhitespace(r):
		return false, stBeforeAttributeName
	case r == '/':
		return false, stSelfClosingStartTag
	case r == '>':
		next := t.emitCurrentTag()
		return false, next
	default:
		t.reportError(ErrTagClosedWrong)
		return true, stBeforeAttributeName
	}
}
