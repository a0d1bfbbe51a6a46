package tokenizer

import "testing"

func TestPositionAdvance(t *testing.T) {
	p := NewPosition()
	if p.Line != 1 || p.Column != 0 || p.Offset != 0 {
		t.Fatalf("NewPosition = %+v, want Line=1 Column=0 Offset=0", p)
	}
	p.Advance(false)
	if p.Line != 1 || p.Column != 1 {
		t.Errorf("after one non-newline advance: %+v", p)
	}
	p.Advance(true)
	if p.Line != 2 || p.Column != 1 {
		t.Errorf("after newline advance: %+v", p)
	}
}

func TestPositionBackIsInverseOfAdvance(t *testing.T) {
	p := NewPosition()
	p.Advance(false)
	p.Advance(false)
	p.Advance(true)
	p.Advance(false)

	want := p.Clone()
	p.Back(false)
	p.Back(true)
	p.Back(false)
	p.Back(false)

	if p.Line != 1 || p.Column != 0 {
		t.Errorf("Back did not fully invert Advance sequence: got %+v", p)
	}
	_ = want
}

func TestPositionBackAcrossNewlineRestoresColumn(t *testing.T) {
	p := NewPosition()
	p.Advance(false) // column 1
	p.Advance(false) // column 2
	p.Advance(true)  // line 2, column 1, pushed column 2
	if p.Column != 1 || p.Line != 2 {
		t.Fatalf("setup: got %+v", p)
	}
	p.Back(true)
	if p.Line != 1 || p.Column != 2 {
		t.Errorf("Back(true) across a pushed newline = %+v, want Line=1 Column=2", p)
	}
}

func TestPositionCloneIsIndependent(t *testing.T) {
	p := NewPosition()
	p.Advance(true)
	clone := p.Clone()
	p.Advance(false)
	if clone.Column == p.Column {
		t.Error("Clone shares state with the original after a later Advance")
	}
}
