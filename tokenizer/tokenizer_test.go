package tokenizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ignorePosition drops Position from comparisons in tests that assert on
// full token shape but not on exact line/column bookkeeping (covered
// separately by position_test.go and source_test.go).
var ignorePosition = cmpopts.IgnoreFields(Token{}, "Pos")

func collectTokens(t *testing.T, input string, opts ...Option) []Token {
	t.Helper()
	tk, err := New(strings.NewReader(input), opts...)
	require.NoError(t, err)
	defer tk.Dispose()

	var toks []Token
	for tk.Next() {
		toks = append(toks, tk.Current())
	}
	require.NoError(t, tk.Err())
	toks = append(toks, tk.Current())
	return toks
}

// collectTokensEnteringModeAfter drives the tokenizer exactly like
// collectTokens, except it writes mode to ParseMode as soon as it sees
// a StartTag named tagName -- standing in for the tree constructor
// decision spec.md §3 leaves external to the tokenizer (e.g. entering
// RCData after a "title" start tag).
func collectTokensEnteringModeAfter(t *testing.T, input, tagName string, mode ParseMode) []Token {
	t.Helper()
	tk, err := New(strings.NewReader(input))
	require.NoError(t, err)
	defer tk.Dispose()

	var toks []Token
	for tk.Next() {
		tok := tk.Current()
		toks = append(toks, tok)
		if tok.Type == StartTagToken && tok.TagName == tagName {
			tk.ParseMode = mode
		}
	}
	require.NoError(t, tk.Err())
	toks = append(toks, tk.Current())
	return toks
}

func TestTokenizerSimpleTag(t *testing.T) {
	toks := collectTokens(t, `<div id="a">hi</div>`)

	want := []Token{
		{Type: StartTagToken, TagName: "div", Attributes: []Attribute{{Name: "id", Value: "a"}}},
		{Type: TextToken, Text: "hi"},
		{Type: EndTagToken, TagName: "div"},
		{Type: EndOfFileToken},
	}
	if diff := cmp.Diff(want, toks, ignorePosition); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerCoalescesAdjacentText(t *testing.T) {
	toks := collectTokens(t, `abc&amp;def`)
	require.Len(t, toks, 2)
	assert.Equal(t, TextToken, toks[0].Type)
	assert.Equal(t, "abc&def", toks[0].Text)
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	toks := collectTokens(t, `<br/>`)
	assert.Equal(t, StartTagToken, toks[0].Type)
	assert.True(t, toks[0].SelfClosing)
}

func TestTokenizerComment(t *testing.T) {
	toks := collectTokens(t, `<!-- hi -->`)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, " hi ", toks[0].Data)
}

func TestTokenizerBogusCommentFromQuestionMark(t *testing.T) {
	toks := collectTokens(t, `<?xml version="1.0"?>`)
	assert.Equal(t, CommentToken, toks[0].Type)
}

func TestTokenizerDownlevelRevealedConditionalComment(t *testing.T) {
	toks := collectTokens(t, `<![if IE]>`)
	require.Equal(t, CommentToken, toks[0].Type)
	assert.True(t, toks[0].DownlevelRevealedConditional)
	assert.Equal(t, "[if IE]", toks[0].Data)
}

func TestTokenizerBogusCommentWithoutBracketIsNotDownlevelRevealed(t *testing.T) {
	toks := collectTokens(t, `<!weird>`)
	require.Equal(t, CommentToken, toks[0].Type)
	assert.False(t, toks[0].DownlevelRevealedConditional)
}

func TestTokenizerDoctype(t *testing.T) {
	toks := collectTokens(t, `<!DOCTYPE html>`)
	assert.Equal(t, DoctypeToken, toks[0].Type)
	assert.Equal(t, "html", toks[0].Name)
	assert.False(t, toks[0].ForceQuirks)
}

func TestTokenizerDoctypeWithPublicAndSystem(t *testing.T) {
	input := `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
	toks := collectTokens(t, input)
	tok := toks[0]
	require.Equal(t, DoctypeToken, tok.Type)
	assert.True(t, tok.PublicIDSet)
	assert.Equal(t, "-//W3C//DTD XHTML 1.0//EN", tok.PublicID)
	assert.True(t, tok.SystemIDSet)
	assert.Equal(t, "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd", tok.SystemID)
}

func TestTokenizerRawtextScriptContent(t *testing.T) {
	toks := collectTokens(t, `<script>var x = "</not-a-tag>";</script>`)
	want := []Token{
		{Type: StartTagToken, TagName: "script"},
		{Type: TextToken, Text: `var x = "</not-a-tag>";`},
		{Type: EndTagToken, TagName: "script"},
		{Type: EndOfFileToken},
	}
	if diff := cmp.Diff(want, toks, ignorePosition); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerRCDataAppropriateEndTag(t *testing.T) {
	toks := collectTokensEnteringModeAfter(t, `<title>a &amp; b</title>`, "title", RCData)
	want := []Token{
		{Type: StartTagToken, TagName: "title"},
		{Type: TextToken, Text: "a & b"},
		{Type: EndTagToken, TagName: "title"},
		{Type: EndOfFileToken},
	}
	if diff := cmp.Diff(want, toks, ignorePosition); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerRCDataInappropriateEndTagIsLiteral(t *testing.T) {
	toks := collectTokensEnteringModeAfter(t, `<title>a</b>c</title>`, "title", RCData)
	require.Len(t, toks, 4)
	assert.Equal(t, "a</b>c", toks[1].Text)
	assert.Equal(t, "title", toks[2].TagName)
}

func TestTokenizerRawtextModeEnteredExternally(t *testing.T) {
	toks := collectTokensEnteringModeAfter(t, `<style>a{color:red}</style>`, "style", Rawtext)
	require.Len(t, toks, 4)
	assert.Equal(t, StartTagToken, toks[0].Type)
	assert.Equal(t, "a{color:red}", toks[1].Text)
	assert.Equal(t, "style", toks[2].TagName)
}

func TestTokenizerTitleWithoutExternalRCDataParsesInnerEndTagAsTag(t *testing.T) {
	toks := collectTokens(t, `<title>a</b>c</title>`)
	want := []Token{
		{Type: StartTagToken, TagName: "title"},
		{Type: TextToken, Text: "a"},
		{Type: EndTagToken, TagName: "b"},
		{Type: TextToken, Text: "c"},
		{Type: EndTagToken, TagName: "title"},
		{Type: EndOfFileToken},
	}
	if diff := cmp.Diff(want, toks, ignorePosition); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerPlaintextConsumesRestOfInputVerbatim(t *testing.T) {
	toks := collectTokens(t, `<plaintext>a</plaintext>still text`)
	require.Len(t, toks, 3)
	assert.Equal(t, "plaintext", toks[0].TagName)
	assert.Equal(t, "a</plaintext>still text", toks[1].Text)
}

func TestTokenizerNamedCharacterReferenceWithoutSemicolon(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `&copy`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	assert.Equal(t, "©", toks[0].Text)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNotTerminated, errs[0].Code)
}

func TestTokenizerNumericCharacterReferenceDecimal(t *testing.T) {
	toks := collectTokens(t, `&#65;`)
	assert.Equal(t, "A", toks[0].Text)
}

func TestTokenizerNumericCharacterReferenceHex(t *testing.T) {
	toks := collectTokens(t, `&#x41;`)
	assert.Equal(t, "A", toks[0].Text)
}

func TestTokenizerNumericCharacterReferenceWindows1252Override(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `&#128;`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	assert.Equal(t, "€", toks[0].Text)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidCode, errs[0].Code)
}

func TestTokenizerAmbiguousAmpersandInAttributeAbortsResolution(t *testing.T) {
	toks := collectTokens(t, `<a href="?a=1&notanentity=2">x</a>`)
	v, ok := toks[0].Attr("href")
	require.True(t, ok)
	assert.Equal(t, "?a=1&notanentity=2", v)
}

func TestTokenizerCommentImmediateCloseIsTagClosedWrong(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<!-->`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	require.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, "", toks[0].Data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTagClosedWrong, errs[0].Code)
}

func TestTokenizerCommentThreeDashCloseIsTagClosedWrong(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<!--->`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	require.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, "", toks[0].Data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTagClosedWrong, errs[0].Code)
}

func TestTokenizerCommentSingleDashBeforeContentReportsEndedWithDash(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<!-- a-b -->`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	require.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, " a-b ", toks[0].Data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCommentEndedWithDash, errs[0].Code)
}

func TestTokenizerAttributeEqualsBeforeNameReportsAttributeNameExpected(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<div =x="1">`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	require.Equal(t, StartTagToken, toks[0].Type)
	v, ok := toks[0].Attr("=x")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrAttributeNameExpected, errs[0].Code)
}

func TestTokenizerDuplicateAttributeIsDropped(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<div a="1" a="2">`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	v, ok := toks[0].Attr("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, hasErrorCode(errs, ErrAttributeDuplicateOmitted))
}

func TestTokenizerEndTagWithAttributesReportsAndDrops(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<div></div a="1">`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	endTag := toks[1]
	assert.Equal(t, EndTagToken, endTag.Type)
	assert.Empty(t, endTag.Attributes)
	assert.True(t, hasErrorCode(errs, ErrEndTagCannotHaveAttributes))
}

func TestTokenizerStrictModeLatchesFatalOnFirstError(t *testing.T) {
	tk, err := New(strings.NewReader(`<div></div a="1">`), WithStrict(true))
	require.NoError(t, err)
	defer tk.Dispose()

	for tk.Next() {
	}
	require.Error(t, tk.Err())
	fe, isFatal := tk.Err().(*FatalError)
	require.True(t, isFatal)
	assert.Equal(t, ErrEndTagCannotHaveAttributes, fe.Code)
}

func TestTokenizerCDataSectionInForeignContent(t *testing.T) {
	tk, err := New(strings.NewReader(`<![CDATA[raw <not a tag]]>`))
	require.NoError(t, err)
	tk.AcceptCharacterData = true
	defer tk.Dispose()

	var got []Token
	for tk.Next() {
		got = append(got, tk.Current())
	}
	got = append(got, tk.Current())
	require.Len(t, got, 2)
	assert.Equal(t, "raw <not a tag", got[0].Text)
}

func TestTokenizerCDataIgnoredWithoutAcceptCharacterData(t *testing.T) {
	var errs []ParseError
	toks := collectTokens(t, `<![CDATA[x]]>`, WithErrorObserver(func(pe ParseError) { errs = append(errs, pe) }))
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.True(t, hasErrorCode(errs, ErrUndefinedMarkupDeclaration))
}

func TestTokenizerResetReusesBuffers(t *testing.T) {
	tk, err := New(strings.NewReader(`<a>1</a>`))
	require.NoError(t, err)
	defer tk.Dispose()
	for tk.Next() {
	}

	require.NoError(t, tk.Reset(strings.NewReader(`<b>2</b>`)))
	var got []Token
	for tk.Next() {
		got = append(got, tk.Current())
	}
	got = append(got, tk.Current())
	require.Len(t, got, 4)
	assert.Equal(t, "b", got[0].TagName)
	assert.Equal(t, "b", got[2].TagName)
}

func TestTokenizerDisposeIsIdempotent(t *testing.T) {
	tk, err := New(strings.NewReader(`x`))
	require.NoError(t, err)
	tk.Dispose()
	tk.Dispose()
}

func hasErrorCode(errs []ParseError, code ErrorCode) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}
