package tokenizer

import "strings"

// tagKind distinguishes a StartTag under construction from an EndTag,
// mirroring _examples/heathj-gobrowse/parser/tokens.go's tagType.
type tagKind uint8

const (
	startTagKind tagKind = iota
	endTagKind
)

// tokenBuilder is the mutable staging area a tag/comment/doctype token
// is assembled in before it is emitted: no token is ever produced while
// its string buffer still holds unassigned content. Grounded on
// _examples/heathj-gobrowse/parser/tokens.go's TokenBuilder, reworked so
// attributes are an ordered, deduplicated slice instead of a bare map.
type tokenBuilder struct {
	name       *strings.Builder
	data       *strings.Builder
	tempBuffer *strings.Builder
	publicID   *strings.Builder
	systemID   *strings.Builder
	attrName   *strings.Builder
	attrValue  *strings.Builder

	attrs     []Attribute
	attrIndex map[string]int
	dupAttr   bool // current attribute is a duplicate; commit must drop it

	kind                         tagKind
	selfClosing                  bool
	forceQuirks                  bool
	publicIDSet                  bool
	systemIDSet                  bool
	downlevelRevealedConditional bool
	charRefCode                  int
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{
		name:       getBuffer(),
		data:       getBuffer(),
		tempBuffer: getBuffer(),
		publicID:   getBuffer(),
		systemID:   getBuffer(),
		attrName:   getBuffer(),
		attrValue:  getBuffer(),
		attrIndex:  make(map[string]int),
	}
}

// release returns every owned buffer to the pool. Called from
// Tokenizer.Reset and Tokenizer.Dispose so long-lived tokenizers do not
// pin one buffer per builder field forever across many tokens.
func (b *tokenBuilder) release() {
	putBuffer(b.name)
	putBuffer(b.data)
	putBuffer(b.tempBuffer)
	putBuffer(b.publicID)
	putBuffer(b.systemID)
	putBuffer(b.attrName)
	putBuffer(b.attrValue)
}

// reset clears every field so the builder is ready to construct the
// next tag/comment/doctype token. Does not touch tempBuffer -- its
// lifetime is scoped by the states that use it; resetTemp is called
// explicitly wherever a fresh scan begins.
func (b *tokenBuilder) reset() {
	b.name.Reset()
	b.data.Reset()
	b.publicID.Reset()
	b.systemID.Reset()
	b.attrName.Reset()
	b.attrValue.Reset()
	b.attrs = nil
	b.attrIndex = make(map[string]int)
	b.dupAttr = false
	b.selfClosing = false
	b.forceQuirks = false
	b.publicIDSet = false
	b.systemIDSet = false
	b.downlevelRevealedConditional = false
}

func (b *tokenBuilder) writeName(r rune)                { b.name.WriteRune(r) }
func (b *tokenBuilder) writeData(r rune)                { b.data.WriteRune(r) }
func (b *tokenBuilder) writeTemp(r rune)                { b.tempBuffer.WriteRune(r) }
func (b *tokenBuilder) resetTemp()                      { b.tempBuffer.Reset() }
func (b *tokenBuilder) temp() string                    { return b.tempBuffer.String() }
func (b *tokenBuilder) writePublicID(r rune)             { b.publicIDSet = true; b.publicID.WriteRune(r) }
func (b *tokenBuilder) writeSystemID(r rune)             { b.systemIDSet = true; b.systemID.WriteRune(r) }
func (b *tokenBuilder) setPublicIDEmpty()                { b.publicIDSet = true }
func (b *tokenBuilder) setSystemIDEmpty()                { b.systemIDSet = true }
func (b *tokenBuilder) enableSelfClosing()               { b.selfClosing = true }
func (b *tokenBuilder) enableForceQuirks()               { b.forceQuirks = true }
func (b *tokenBuilder) enableDownlevelRevealed()         { b.downlevelRevealedConditional = true }

func (b *tokenBuilder) writeAttrName(r rune)  { b.attrName.WriteRune(r) }
func (b *tokenBuilder) writeAttrValue(r rune) { b.attrValue.WriteRune(r) }

// commitAttribute ends one name/value pair. It returns true if this
// attribute duplicates an earlier one in the same tag, in which case
// the caller must report *attribute-duplicate-omitted*; the pair is
// always dropped from the ordered slice in that case.
func (b *tokenBuilder) commitAttribute() (duplicate bool) {
	name := b.attrName.String()
	value := b.attrValue.String()
	b.attrName.Reset()
	b.attrValue.Reset()
	if name == "" {
		return false
	}
	if _, ok := b.attrIndex[name]; ok {
		return true
	}
	b.attrIndex[name] = len(b.attrs)
	b.attrs = append(b.attrs, Attribute{Name: name, Value: value})
	return false
}

func (b *tokenBuilder) startTagToken(pos Position) Token {
	return Token{
		Type: StartTagToken, Pos: pos,
		TagName: b.name.String(), Attributes: b.attrs, SelfClosing: b.selfClosing,
	}
}

func (b *tokenBuilder) endTagToken(pos Position) Token {
	return Token{
		Type: EndTagToken, Pos: pos,
		TagName: b.name.String(), Attributes: b.attrs, SelfClosing: b.selfClosing,
	}
}

func (b *tokenBuilder) textTokenString(pos Position, s string) Token {
	return Token{Type: TextToken, Pos: pos, Text: s}
}

func (b *tokenBuilder) endOfFileToken(pos Position) Token {
	return Token{Type: EndOfFileToken, Pos: pos}
}

func (b *tokenBuilder) commentToken(pos Position) Token {
	return Token{
		Type: CommentToken, Pos: pos,
		Data: b.data.String(), DownlevelRevealedConditional: b.downlevelRevealedConditional,
	}
}

func (b *tokenBuilder) doctypeToken(pos Position) Token {
	return Token{
		Type: DoctypeToken, Pos: pos,
		Name: b.name.String(), ForceQuirks: b.forceQuirks,
		PublicID: b.publicID.String(), SystemID: b.systemID.String(),
		PublicIDSet: b.publicIDSet, SystemIDSet: b.systemIDSet,
	}
}
