package tokenizer

// TokenType is the tagged-variant discriminant for Token. Grounded on
// _examples/heathj-gobrowse/parser/tokens.go's tokenType enum, renamed
// to the exported taxonomy this tokenizer actually produces (Text,
// StartTag, EndTag, Comment, Doctype, EndOfFile).
type TokenType uint8

const (
	TextToken TokenType = iota
	StartTagToken
	EndTagToken
	CommentToken
	DoctypeToken
	EndOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case EndOfFileToken:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}

// Attribute is an ordered (name, value) pair. Names are ASCII-lowercased
// during tokenization; duplicates within one tag are dropped before the
// token is emitted.
type Attribute struct {
	Name  string
	Value string
}

// Token is the tagged variant emitted by the tokenizer, carrying the
// position at which it began and the fields relevant to its Type. Only
// the fields documented for a given Type are meaningful; the others
// stay zero.
type Token struct {
	Type Type
	Pos  Position

	// Text holds the payload for a TextToken.
	Text string

	// TagName, Attributes and SelfClosing hold the payload for
	// StartTagToken/EndTagToken.
	TagName     string
	Attributes  []Attribute
	SelfClosing bool

	// Data and DownlevelRevealedConditional hold the payload for
	// CommentToken.
	Data                         string
	DownlevelRevealedConditional bool

	// Name, PublicID, SystemID, PublicIDSet, SystemIDSet and
	// ForceQuirks hold the payload for DoctypeToken. PublicIDSet /
	// SystemIDSet distinguish "missing" from "present but empty".
	Name        string
	PublicID    string
	SystemID    string
	PublicIDSet bool
	SystemIDSet bool
	ForceQuirks bool
}

// Type is an alias retained so Token.Type reads naturally; TokenType
// remains the exported name used everywhere else (constants, String).
type Type = TokenType

// Attr looks up the first (post-deduplication, so the only) attribute
// with the given lowercase name.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
