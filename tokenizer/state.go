package tokenizer

// tokenizerState enumerates every state the tokenizer's internal
// machine can be in. Naming and ordering follow
// _examples/heathj-gobrowse/parser/tokenizer.go's tokenizerState enum,
// renamed to distinguish it from the externally visible ParseMode:
// ParseMode is the top-level content dispatch a caller can read and
// write, while tokenizerState additionally covers every markup
// sub-state (tag names, attributes, comments, doctype, character
// references) the caller never sees directly.
type tokenizerState uint8

const (
	stData tokenizerState = iota
	stRCData
	stRawText
	stScriptData
	stPlaintext
	stTagOpen
	stEndTagOpen
	stTagName
	stRCDataLessThanSign
	stRCDataEndTagOpen
	stRCDataEndTagName
	stRawTextLessThanSign
	stRawTextEndTagOpen
	stRawTextEndTagName
	stScriptDataLessThanSign
	stScriptDataEndTagOpen
	stScriptDataEndTagName
	stScriptDataEscapeStart
	stScriptDataEscapeStartDash
	stScriptDataEscaped
	stScriptDataEscapedDash
	stScriptDataEscapedDashDash
	stScriptDataEscapedLessThanSign
	stScriptDataEscapedEndTagOpen
	stScriptDataEscapedEndTagName
	stScriptDataDoubleEscapeStart
	stScriptDataDoubleEscaped
	stScriptDataDoubleEscapedDash
	stScriptDataDoubleEscapedDashDash
	stScriptDataDoubleEscapedLessThanSign
	stScriptDataDoubleEscapeEnd
	stBeforeAttributeName
	stAttributeName
	stAfterAttributeName
	stBeforeAttributeValue
	stAttributeValueDoubleQuoted
	stAttributeValueSingleQuoted
	stAttributeValueUnquoted
	stAfterAttributeValueQuoted
	stSelfClosingStartTag
	stBogusComment
	stMarkupDeclarationOpen
	stCommentStart
	stCommentStartDash
	stComment
	stCommentLessThanSign
	stCommentLessThanSignBang
	stCommentLessThanSignBangDash
	stCommentLessThanSignBangDashDash
	stCommentEndDash
	stCommentEnd
	stCommentEndBang
	stDoctype
	stBeforeDoctypeName
	stDoctypeName
	stAfterDoctypeName
	stAfterDoctypePublicKeyword
	stBeforeDoctypePublicIdentifier
	stDoctypePublicIdentifierDoubleQuoted
	stDoctypePublicIdentifierSingleQuoted
	stAfterDoctypePublicIdentifier
	stBetweenDoctypePublicAndSystemIdentifiers
	stAfterDoctypeSystemKeyword
	stBeforeDoctypeSystemIdentifier
	stDoctypeSystemIdentifierDoubleQuoted
	stDoctypeSystemIdentifierSingleQuoted
	stAfterDoctypeSystemIdentifier
	stBogusDoctype
	stCDataSection
	stCDataSectionBracket
	stCDataSectionEnd
	stCharacterReference
	stNamedCharacterReference
	stAmbiguousAmpersand
	stNumericCharacterReference
	stHexadecimalCharacterReferenceStart
	stDecimalCharacterReferenceStart
	stHexadecimalCharacterReference
	stDecimalCharacterReference
	stNumericCharacterReferenceEnd
)

var stateNames = map[tokenizerState]string{
	stData: "Data", stRCData: "RCData", stRawText: "RawText",
	stScriptData: "ScriptData", stPlaintext: "Plaintext", stTagOpen: "TagOpen",
	stEndTagOpen: "EndTagOpen", stTagName: "TagName",
	stRCDataLessThanSign: "RCDataLessThanSign", stRCDataEndTagOpen: "RCDataEndTagOpen",
	stRCDataEndTagName: "RCDataEndTagName", stRawTextLessThanSign: "RawTextLessThanSign",
	stRawTextEndTagOpen: "RawTextEndTagOpen", stRawTextEndTagName: "RawTextEndTagName",
	stScriptDataLessThanSign: "ScriptDataLessThanSign", stScriptDataEndTagOpen: "ScriptDataEndTagOpen",
	stScriptDataEndTagName: "ScriptDataEndTagName", stScriptDataEscapeStart: "ScriptDataEscapeStart",
	stScriptDataEscapeStartDash: "ScriptDataEscapeStartDash", stScriptDataEscaped: "ScriptDataEscaped",
	stScriptDataEscapedDash: "ScriptDataEscapedDash", stScriptDataEscapedDashDash: "ScriptDataEscapedDashDash",
	stScriptDataEscapedLessThanSign: "ScriptDataEscapedLessThanSign",
	stScriptDataEscapedEndTagOpen:   "ScriptDataEscapedEndTagOpen",
	stScriptDataEscapedEndTagName:   "ScriptDataEscapedEndTagName",
	stScriptDataDoubleEscapeStart:   "ScriptDataDoubleEscapeStart",
	stScriptDataDoubleEscaped:       "ScriptDataDoubleEscaped",
	stScriptDataDoubleEscapedDash:   "ScriptDataDoubleEscapedDash",
	stScriptDataDoubleEscapedDashDash:     "ScriptDataDoubleEscapedDashDash",
	stScriptDataDoubleEscapedLessThanSign: "ScriptDataDoubleEscapedLessThanSign",
	stScriptDataDoubleEscapeEnd:           "ScriptDataDoubleEscapeEnd",
	stBeforeAttributeName:                 "BeforeAttributeName",
	stAttributeName:                       "AttributeName",
	stAfterAttributeName:                  "AfterAttributeName",
	stBeforeAttributeValue:                "BeforeAttributeValue",
	stAttributeValueDoubleQuoted:          "AttributeValueDoubleQuoted",
	stAttributeValueSingleQuoted:          "AttributeValueSingleQuoted",
	stAttributeValueUnquoted:              "AttributeValueUnquoted",
	stAfterAttributeValueQuoted:           "AfterAttributeValueQuoted",
	stSelfClosingStartTag:                 "SelfClosingStartTag",
	stBogusComment:                        "BogusComment",
	stMarkupDeclarationOpen:               "MarkupDeclarationOpen",
	stCommentStart:                        "CommentStart",
	stCommentStartDash:                    "CommentStartDash",
	stComment:                             "Comment",
	stCommentLessThanSign:                 "CommentLessThanSign",
	stCommentLessThanSignBang:             "CommentLessThanSignBang",
	stCommentLessThanSignBangDash:         "CommentLessThanSignBangDash",
	stCommentLessThanSignBangDashDash:     "CommentLessThanSignBangDashDash",
	stCommentEndDash:                      "CommentEndDash",
	stCommentEnd:                          "CommentEnd",
	stCommentEndBang:                      "CommentEndBang",
	stDoctype:                             "Doctype",
	stBeforeDoctypeName:                   "BeforeDoctypeName",
	stDoctypeName:                         "DoctypeName",
	stAfterDoctypeName:                    "AfterDoctypeName",
	stAfterDoctypePublicKeyword:           "AfterDoctypePublicKeyword",
	stBeforeDoctypePublicIdentifier:       "BeforeDoctypePublicIdentifier",
	stDoctypePublicIdentifierDoubleQuoted: "DoctypePublicIdentifierDoubleQuoted",
	stDoctypePublicIdentifierSingleQuoted: "DoctypePublicIdentifierSingleQuoted",
	stAfterDoctypePublicIdentifier:        "AfterDoctypePublicIdentifier",
	stBetweenDoctypePublicAndSystemIdentifiers: "BetweenDoctypePublicAndSystemIdentifiers",
	stAfterDoctypeSystemKeyword:                "AfterDoctypeSystemKeyword",
	stBeforeDoctypeSystemIdentifier:            "BeforeDoctypeSystemIdentifier",
	stDoctypeSystemIdentifierDoubleQuoted:      "DoctypeSystemIdentifierDoubleQuoted",
	stDoctypeSystemIdentifierSingleQuoted:      "DoctypeSystemIdentifierSingleQuoted",
	stAfterDoctypeSystemIdentifier:             "AfterDoctypeSystemIdentifier",
	stBogusDoctype:                             "BogusDoctype",
	stCDataSection:                             "CDataSection",
	stCDataSectionBracket:                      "CDataSectionBracket",
	stCDataSectionEnd:                          "CDataSectionEnd",
	stCharacterReference:                       "CharacterReference",
	stNamedCharacterReference:                  "NamedCharacterReference",
	stAmbiguousAmpersand:                       "AmbiguousAmpersand",
	stNumericCharacterReference:                "NumericCharacterReference",
	stHexadecimalCharacterReferenceStart:       "HexadecimalCharacterReferenceStart",
	stDecimalCharacterReferenceStart:           "DecimalCharacterReferenceStart",
	stHexadecimalCharacterReference:            "HexadecimalCharacterReference",
	stDecimalCharacterReference:                "DecimalCharacterReference",
	stNumericCharacterReferenceEnd:             "NumericCharacterReferenceEnd",
}

func (s tokenizerState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// ParseMode is the externally visible top-level content dispatch: one
// of PCData, RCData, Rawtext, Plaintext, or Script. Setting ParseMode
// maps directly onto the tokenizerState the internal machine resumes
// from once it next reaches a content-state boundary.
type ParseMode uint8

const (
	PCData ParseMode = iota
	RCData
	Rawtext
	Plaintext
	Script
)

func (m ParseMode) state() tokenizerState {
	switch m {
	case RCData:
		return stRCData
	case Rawtext:
		return stRawText
	case Plaintext:
		return stPlaintext
	case Script:
		return stScriptData
	default:
		return stData
	}
}

func stateToMode(s tokenizerState) ParseMode {
	switch s {
	case stRCData, stRCDataLessThanSign, stRCDataEndTagOpen, stRCDataEndTagName:
		return RCData
	case stRawText, stRawTextLessThanSign, stRawTextEndTagOpen, stRawTextEndTagName:
		return Rawtext
	case stPlaintext:
		return Plaintext
	case stScriptData, stScriptDataLessThanSign, stScriptDataEndTagOpen, stScriptDataEndTagName,
		stScriptDataEscapeStart, stScriptDataEscapeStartDash, stScriptDataEscaped,
		stScriptDataEscapedDash, stScriptDataEscapedDashDash, stScriptDataEscapedLessThanSign,
		stScriptDataEscapedEndTagOpen, stScriptDataEscapedEndTagName, stScriptDataDoubleEscapeStart,
		stScriptDataDoubleEscaped, stScriptDataDoubleEscapedDash, stScriptDataDoubleEscapedDashDash,
		stScriptDataDoubleEscapedLessThanSign, stScriptDataDoubleEscapeEnd:
		return Script
	default:
		return PCData
	}
}
