package tokenizer

import "testing"

func TestErrorChannelNonStrictCallsObserver(t *testing.T) {
	var got []ParseError
	c := errorChannel{observer: func(pe ParseError) { got = append(got, pe) }}

	if fatal := c.report(ErrNull, NewPosition()); fatal != nil {
		t.Errorf("non-strict report returned a fatal error: %v", fatal)
	}
	if len(got) != 1 || got[0].Code != ErrNull {
		t.Errorf("observer received %+v, want one ErrNull", got)
	}
}

func TestErrorChannelStrictLatchesFirstOnly(t *testing.T) {
	c := errorChannel{strict: true}

	first := c.report(ErrEOF, NewPosition())
	if first == nil {
		t.Fatal("strict report returned nil, want a FatalError")
	}
	if first.Code != ErrEOF {
		t.Errorf("fatal code = %s, want eof", first.Code)
	}

	second := c.report(ErrNull, NewPosition())
	if second != first {
		t.Error("a second report in strict mode replaced the latched fatal error")
	}
}

func TestErrorChannelGuardReentrancyPanics(t *testing.T) {
	c := errorChannel{inObserver: true}
	defer func() {
		if recover() == nil {
			t.Error("guardReentrancy did not panic while inObserver was true")
		}
	}()
	c.guardReentrancy()
}

func TestErrorChannelGuardReentrancyNoop(t *testing.T) {
	c := errorChannel{}
	c.guardReentrancy() // must not panic
}

func TestParseErrorMessage(t *testing.T) {
	pe := ParseError{Code: ErrNull, Pos: Position{Line: 2, Column: 5}}
	want := "null at 2:5"
	if got := pe.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}
