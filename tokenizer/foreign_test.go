package tokenizer

import "testing"

// fakeTokenSource replays a fixed token slice, satisfying TokenSource
// without driving an actual Tokenizer.
type fakeTokenSource struct {
	toks []Token
	i    int
}

func (f *fakeTokenSource) Next() bool {
	if f.i >= len(f.toks) {
		return false
	}
	f.i++
	return f.toks[f.i-1].Type != EndOfFileToken
}

func (f *fakeTokenSource) Current() Token { return f.toks[f.i-1] }
func (f *fakeTokenSource) Err() error     { return nil }

func drainForeign(f *Foreign) []Token {
	var got []Token
	for f.Next() {
		got = append(got, f.Current())
	}
	got = append(got, f.Current())
	return got
}

func TestForeignAdjustsSVGTagNameAndAttributes(t *testing.T) {
	src := &fakeTokenSource{toks: []Token{
		{Type: StartTagToken, TagName: "svg"},
		{Type: StartTagToken, TagName: "lineargradient", Attributes: []Attribute{{Name: "gradientunits", Value: "userSpaceOnUse"}}},
		{Type: EndTagToken, TagName: "lineargradient"},
		{Type: EndTagToken, TagName: "svg"},
		{Type: EndOfFileToken},
	}}
	got := drainForeign(NewForeign(src))

	if got[1].TagName != "linearGradient" {
		t.Errorf("TagName = %q, want linearGradient", got[1].TagName)
	}
	v, ok := got[1].Attr("gradientUnits")
	if !ok || v != "userSpaceOnUse" {
		t.Errorf("Attr(gradientUnits) = (%q, %v), want (userSpaceOnUse, true)", v, ok)
	}
	if got[2].TagName != "linearGradient" {
		t.Errorf("end tag TagName = %q, want linearGradient", got[2].TagName)
	}
}

func TestForeignAdjustsMathMLAttribute(t *testing.T) {
	src := &fakeTokenSource{toks: []Token{
		{Type: StartTagToken, TagName: "math"},
		{Type: StartTagToken, TagName: "annotation-xml", Attributes: []Attribute{{Name: "definitionurl", Value: "x"}}},
		{Type: EndTagToken, TagName: "annotation-xml"},
		{Type: EndTagToken, TagName: "math"},
		{Type: EndOfFileToken},
	}}
	got := drainForeign(NewForeign(src))

	v, ok := got[1].Attr("definitionURL")
	if !ok || v != "x" {
		t.Errorf("Attr(definitionURL) = (%q, %v), want (x, true)", v, ok)
	}
}

func TestForeignLeavesPlainHTMLUntouched(t *testing.T) {
	src := &fakeTokenSource{toks: []Token{
		{Type: StartTagToken, TagName: "div", Attributes: []Attribute{{Name: "gradientunits", Value: "z"}}},
		{Type: EndTagToken, TagName: "div"},
		{Type: EndOfFileToken},
	}}
	got := drainForeign(NewForeign(src))

	if got[0].TagName != "div" {
		t.Errorf("TagName = %q, want div unchanged outside foreign content", got[0].TagName)
	}
	v, _ := got[0].Attr("gradientunits")
	if v != "z" {
		t.Errorf("Attr(gradientunits) = %q, want untouched", v)
	}
}

func TestForeignDepthTracksNestedSVGWithoutLeakingIntoSubsequentHTML(t *testing.T) {
	src := &fakeTokenSource{toks: []Token{
		{Type: StartTagToken, TagName: "svg"},
		{Type: StartTagToken, TagName: "foreignobject"},
		{Type: EndTagToken, TagName: "foreignobject"},
		{Type: EndTagToken, TagName: "svg"},
		{Type: StartTagToken, TagName: "div", Attributes: []Attribute{{Name: "viewbox", Value: "z"}}},
		{Type: EndOfFileToken},
	}}
	f := NewForeign(src)
	got := drainForeign(f)

	if got[1].TagName != "foreignObject" {
		t.Errorf("TagName = %q, want foreignObject while inside svg", got[1].TagName)
	}
	if got[4].TagName != "div" {
		t.Fatalf("token 4 = %+v, want the trailing div", got[4])
	}
	v, _ := got[4].Attr("viewbox")
	if v != "z" {
		t.Errorf("Attr(viewbox) = %q, want left untouched once svg has closed", v)
	}
}

func TestForeignSelfClosingSVGStartTagDoesNotIncrementDepth(t *testing.T) {
	src := &fakeTokenSource{toks: []Token{
		{Type: StartTagToken, TagName: "svg"},
		{Type: StartTagToken, TagName: "path", SelfClosing: true},
		{Type: EndTagToken, TagName: "svg"},
		{Type: EndOfFileToken},
	}}
	got := drainForeign(NewForeign(src))
	if got[2].Type != EndTagToken || got[2].TagName != "svg" {
		t.Errorf("token 2 = %+v, want the matching svg end tag consuming exactly one level", got[2])
	}
}

func TestSVGAttributeNameLeavesTableMissesUnchanged(t *testing.T) {
	if got := svgAttributeName("plain"); got != "plain" {
		t.Errorf("svgAttributeName(plain) = %q, want unchanged", got)
	}
	if got := svgAttributeName("viewbox"); got != "viewBox" {
		t.Errorf("svgAttributeName(viewbox) = %q, want viewBox from the fixed table", got)
	}
	if got := svgAttributeName("xlink:href"); got != "xlink:href" {
		t.Errorf("svgAttributeName(xlink:href) = %q, want unchanged (not a camelCase derivation)", got)
	}
	if got := svgAttributeName("data-foo"); got != "data-foo" {
		t.Errorf("svgAttributeName(data-foo) = %q, want unchanged", got)
	}
}
