package tokenizer

import "testing"

func TestTokenBuilderCommitAttributeDeduplicates(t *testing.T) {
	b := newTokenBuilder()
	defer b.release()

	b.writeAttrName('a')
	b.writeAttrValue('1')
	if dup := b.commitAttribute(); dup {
		t.Fatal("first commit reported a duplicate")
	}

	b.writeAttrName('a')
	b.writeAttrValue('2')
	if dup := b.commitAttribute(); !dup {
		t.Fatal("second commit of the same name did not report a duplicate")
	}

	if len(b.attrs) != 1 || b.attrs[0].Value != "1" {
		t.Errorf("attrs = %+v, want one attribute with value 1 (first occurrence wins)", b.attrs)
	}
}

func TestTokenBuilderStartTagToken(t *testing.T) {
	b := newTokenBuilder()
	defer b.release()

	b.kind = startTagKind
	b.writeName('d')
	b.writeName('i')
	b.writeName('v')
	b.writeAttrName('i')
	b.writeAttrName('d')
	b.writeAttrValue('x')
	b.commitAttribute()
	b.enableSelfClosing()

	tok := b.startTagToken(NewPosition())
	if tok.Type != StartTagToken {
		t.Errorf("Type = %s, want StartTag", tok.Type)
	}
	if tok.TagName != "div" {
		t.Errorf("TagName = %q, want div", tok.TagName)
	}
	if !tok.SelfClosing {
		t.Error("SelfClosing = false, want true")
	}
	if v, ok := tok.Attr("id"); !ok || v != "x" {
		t.Errorf("Attr(id) = (%q, %v), want (x, true)", v, ok)
	}
}

func TestTokenBuilderResetPreservesTempBuffer(t *testing.T) {
	b := newTokenBuilder()
	defer b.release()

	b.writeTemp('&')
	b.writeName('a')
	b.reset()

	if b.name.String() != "" {
		t.Errorf("name buffer not cleared by reset: %q", b.name.String())
	}
	if b.temp() != "&" {
		t.Errorf("reset touched tempBuffer: got %q, want unchanged \"&\"", b.temp())
	}
}

func TestTokenBuilderDoctypeIdentifierPresence(t *testing.T) {
	b := newTokenBuilder()
	defer b.release()

	tok := b.doctypeToken(NewPosition())
	if tok.PublicIDSet || tok.SystemIDSet {
		t.Error("identifiers reported present before setPublicIDEmpty/setSystemIDEmpty")
	}

	b.setPublicIDEmpty()
	tok = b.doctypeToken(NewPosition())
	if !tok.PublicIDSet || tok.PublicID != "" {
		t.Errorf("PublicIDSet/PublicID = %v/%q, want true/empty", tok.PublicIDSet, tok.PublicID)
	}
}
