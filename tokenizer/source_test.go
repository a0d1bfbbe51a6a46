package tokenizer

import (
	"strings"
	"testing"
)

func TestNewSourceCollapsesCRLF(t *testing.T) {
	src, err := NewSource(strings.NewReader("a\r\nb\rc\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got []rune
	for {
		r := src.ReadAdvance()
		if r == EOF {
			break
		}
		got = append(got, r)
	}
	want := []rune{'a', '\n', 'b', '\n', 'c', '\n'}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", string(got), string(want))
	}
}

func TestSourceStepBackAndReread(t *testing.T) {
	src, err := NewSource(strings.NewReader("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if r := src.ReadAdvance(); r != 'a' {
		t.Fatalf("first read = %q, want a", r)
	}
	if r := src.ReadAdvance(); r != 'b' {
		t.Fatalf("second read = %q, want b", r)
	}
	src.StepBack(1)
	if r := src.ReadAdvance(); r != 'b' {
		t.Errorf("re-read after StepBack(1) = %q, want b", r)
	}
}

func TestSourcePeekNDoesNotMoveIndex(t *testing.T) {
	src, err := NewSource(strings.NewReader("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if got := src.PeekN(3); got != "hel" {
		t.Errorf("PeekN(3) = %q, want hel", got)
	}
	if src.Index() != 0 {
		t.Errorf("PeekN moved the index to %d, want 0", src.Index())
	}
	if got := src.PeekN(100); got != "hello" {
		t.Errorf("PeekN past end = %q, want hello", got)
	}
}

func TestSourceSeek(t *testing.T) {
	src, err := NewSource(strings.NewReader("abcdef"))
	if err != nil {
		t.Fatal(err)
	}
	src.Seek(4)
	if r := src.ReadAdvance(); r != 'e' {
		t.Errorf("after Seek(4), ReadAdvance = %q, want e", r)
	}
	src.Seek(1)
	if r := src.ReadAdvance(); r != 'b' {
		t.Errorf("after Seek(1), ReadAdvance = %q, want b", r)
	}
}

func TestSourceContinuesWithInsensitive(t *testing.T) {
	src, err := NewSource(strings.NewReader("DOCTYPE html"))
	if err != nil {
		t.Fatal(err)
	}
	if !src.ContinuesWithInsensitive("doctype") {
		t.Error("ContinuesWithInsensitive(doctype) = false, want true")
	}
	if src.Index() != 0 {
		t.Error("ContinuesWithInsensitive moved the index")
	}
}

func TestSourceContinuesWithSensitiveIsCaseSensitive(t *testing.T) {
	src, err := NewSource(strings.NewReader("[CDATA[x"))
	if err != nil {
		t.Fatal(err)
	}
	if !src.ContinuesWithSensitive("[CDATA[") {
		t.Error("exact-case match should succeed")
	}
	if src.ContinuesWithSensitive("[cdata[") {
		t.Error("ContinuesWithSensitive matched a different-case string")
	}
}

func TestSourceReadAdvanceAtEOF(t *testing.T) {
	src, err := NewSource(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if r := src.ReadAdvance(); r != EOF {
		t.Errorf("ReadAdvance on empty source = %q, want EOF", r)
	}
	if r := src.ReadAdvance(); r != EOF {
		t.Errorf("repeated ReadAdvance past EOF = %q, want EOF", r)
	}
}
