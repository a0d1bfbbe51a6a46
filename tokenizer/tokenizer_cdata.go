package tokenizer

// This file implements CDATA-section recognition, reachable only from
// markupDeclarationOpenState when AcceptCharacterData is set (foreign
// content). Grounded on
// _examples/heathj-gobrowse/parser/tokenizer.go's cDataSectionParser
// family; its content is emitted as ordinary text, matching the
// standard's handling of CDATA outside HTML integration points.

func init() {
	dispatch[stCDataSection] = (*Tokenizer).cDataSectionState
	dispatch[stCDataSectionBracket] = (*Tokenizer).cDataSectionBracketState
	dispatch[stCDataSectionEnd] = (*Tokenizer).cDataSectionEndState
}

func (t *Tokenizer) cDataSectionState(r rune, eof bool) (bool, tokenizerState) {
	if eof {
		t.reportError(ErrEOF)
		return true, stData
	}
	switch r {
	case ']':
		return false, stCDataSectionBracket
	case 0:
		t.appendText(r)
		return false, stCDataSection
	default:
		t.appendText(r)
		return false, stCDataSection
	}
}

func (t *Tokenizer) cDataSectionBracketState(r rune, eof bool) (bool, tokenizerState) {
	if !eof && r == ']' {
		return false, stCDataSectionEnd
	}
	t.appendText(']')
	return true, stCDataSection
}

func (t *Tokenizer) cDataSectionEndState(r rune, eof bool) (bool, tokenizerState) {
	if !eof {
		switch r {
		case ']':
			t.appendText(']')
			return false, stCDataSectionEnd
		case '>':
			return false, stData
		}
	}
	t.appendTextString("]]")
	return true, stCDataSection
}
