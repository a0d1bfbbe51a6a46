package tokenizer

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Tokenizer is the streaming HTML5 tokenizer. It pulls characters from
// a Source, drives the state machine, and exposes tokens one at a time
// through Next/Current, matching a pull-based consumer contract.
//
// Grounded on _examples/heathj-gobrowse/parser/tokenizer.go's
// HTMLTokenizer: same "table of xxxStateParser methods plus a
// reconsume loop" shape, reworked so that (a) adjacent character
// tokens coalesce into one Text token per run, (b) the DOM-aware
// adjustedCurrentNode check that gated CDATA recognition is replaced
// by the plain AcceptCharacterData flag (tree construction is out of
// scope here), and (c) errors flow through the errorChannel component
// instead of being silently dropped.
type Tokenizer struct {
	src         *Source
	state       tokenizerState
	returnState tokenizerState

	b   *tokenBuilder
	log *logrus.Entry

	pending                 []Token
	lastEmittedStartTagName string
	current                 Token
	done                    bool
	disposed                bool
	fatal                   error

	errs     errorChannel
	entities EntityTable

	// ParseMode is the externally visible top-level content dispatch:
	// one of PCData, RCData, Rawtext, Plaintext, Script. It is kept in
	// lock-step with the internal state machine's own transitions
	// into/out of the five content states via gotoContent; a caller may
	// also assign it directly (e.g. to enter RCData/Rawtext ahead of a
	// tree constructor's decision) as long as the tokenizer is
	// currently sitting at a content-state boundary.
	ParseMode ParseMode

	// AcceptCharacterData gates CDATA-section recognition inside markup
	// declarations. A real HTML tree constructor sets this true while
	// the adjusted current node is a foreign-content (SVG/MathML)
	// element; that decision is out of scope here, so the flag is a
	// plain knob a caller drives directly.
	AcceptCharacterData bool

	pendingText      *strings.Builder
	pendingTextStart Position
	haveText         bool

	// tagStartPos records where the tag/comment/doctype token currently
	// under construction began (the position of '<'), separate from
	// curCharPos which tracks whatever character is presently being
	// processed.
	tagStartPos Position
	curCharPos  Position
}

// Option configures a Tokenizer at construction time. Modeled on the
// functional-options shape of
// _examples/jacoelho-xsd/pkg/xmltext/options.go -- a pattern absent
// from gobrowse itself but standard elsewhere in the corpus.
type Option func(*Tokenizer)

// WithEntityTable overrides the default curated entity dictionary with
// a caller-supplied one.
func WithEntityTable(t EntityTable) Option {
	return func(tk *Tokenizer) { tk.entities = t }
}

// WithStrict starts the tokenizer in strict mode.
func WithStrict(strict bool) Option {
	return func(tk *Tokenizer) { tk.errs.strict = strict }
}

// WithErrorObserver registers the single error observer.
func WithErrorObserver(o ErrorObserver) Option {
	return func(tk *Tokenizer) { tk.errs.observer = o }
}

// WithLogger overrides the default package-level logrus logger, e.g.
// to attach caller-specific fields.
func WithLogger(entry *logrus.Entry) Option {
	return func(tk *Tokenizer) { tk.log = entry }
}

// New constructs a Tokenizer reading from r, starting in PCData / Data
// state.
func New(r io.Reader, opts ...Option) (*Tokenizer, error) {
	src, err := NewSource(r)
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{
		src:         src,
		state:       stData,
		b:           newTokenBuilder(),
		entities:    defaultEntityTable,
		log:         logrus.WithField("component", "tokenizer"),
		pendingText: getBuffer(),
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// Reset re-seats the tokenizer onto a fresh reader, reusing its
// buffers via the pool instead of allocating a new tokenBuilder.
func (t *Tokenizer) Reset(r io.Reader) error {
	src, err := NewSource(r)
	if err != nil {
		return err
	}
	t.b.release()
	putBuffer(t.pendingText)

	t.src = src
	t.state = stData
	t.returnState = 0
	t.b = newTokenBuilder()
	t.pending = nil
	t.lastEmittedStartTagName = ""
	t.current = Token{}
	t.done = false
	t.disposed = false
	t.fatal = nil
	t.errs.fatal = nil
	t.ParseMode = PCData
	t.pendingText = getBuffer()
	t.haveText = false
	return nil
}

// Dispose releases the tokenizer's owned buffers back to the pool.
// Double-dispose is a no-op.
func (t *Tokenizer) Dispose() {
	if t.disposed {
		return
	}
	t.b.release()
	putBuffer(t.pendingText)
	t.disposed = true
}

func (t *Tokenizer) checkDisposed() {
	if t.disposed {
		panic("tokenizer: use after Dispose")
	}
}

// Strict reports whether the tokenizer is in strict mode.
func (t *Tokenizer) Strict() bool { return t.errs.strict }

// SetStrict toggles strict mode.
func (t *Tokenizer) SetStrict(strict bool) { t.errs.strict = strict }

// SetErrorObserver installs the single error observer.
func (t *Tokenizer) SetErrorObserver(o ErrorObserver) { t.errs.observer = o }

// Line and Column report the position of the most recently emitted
// token.
func (t *Tokenizer) Line() int   { return t.current.Pos.Line }
func (t *Tokenizer) Column() int { return t.current.Pos.Column }

// Current returns the most recently produced token.
func (t *Tokenizer) Current() Token { return t.current }

// Err returns the fatal error latched by strict mode, if any.
func (t *Tokenizer) Err() error { return t.fatal }

// Next advances the tokenizer by exactly one token. The produced token
// is retrieved with Current. Next returns false once the EndOfFile
// token has been produced, or once a strict-mode fatal error has
// latched (retrievable via Err).
func (t *Tokenizer) Next() bool {
	t.checkDisposed()
	t.errs.guardReentrancy()
	if t.done {
		return false
	}

	tok, fatal := t.step()
	t.current = tok
	if fatal != nil {
		t.fatal = fatal
		t.done = true
		return false
	}
	if tok.Type == EndOfFileToken {
		t.done = true
		return false
	}
	return true
}

// step drains the pending queue if non-empty, otherwise pulls
// characters and runs the state machine until at least one token has
// been queued (some states emit zero, one, or several tokens per
// character consumed, exactly as in
// _examples/heathj-gobrowse/parser/tokenizer.go's Token method).
func (t *Tokenizer) step() (Token, *FatalError) {
	for {
		if len(t.pending) > 0 {
			tok := t.pending[0]
			t.pending = t.pending[1:]
			return tok, nil
		}

		t.resyncParseMode()

		t.curCharPos = t.src.CurrentPosition()
		r := t.src.ReadAdvance()
		eof := r == EOF

		if err := t.processRune(r, eof); err != nil {
			return Token{}, err
		}
	}
}

// processRune runs the reconsume loop for one input character (or
// EOF), mirroring _examples/heathj-gobrowse/parser/tokenizer.go's
// processRune, but returning the first strict-mode fatal error
// encountered instead of only logging.
func (t *Tokenizer) processRune(r rune, eof bool) *FatalError {
	reconsume := true
	for reconsume {
		handler := dispatch[t.state]
		var next tokenizerState
		reconsume, next = handler(t, r, eof)
		t.log.WithFields(logrus.Fields{
			"state": t.state.String(),
			"next":  next.String(),
			"rune":  runeLabel(r, eof),
		}).Trace("tokenizer state transition")
		t.state = next
	}
	return t.errs.fatal
}

func runeLabel(r rune, eof bool) string {
	if eof {
		return "<EOF>"
	}
	return string(r)
}

// reportError funnels a recoverable grammar violation to the error
// channel at the position of the character currently being processed.
func (t *Tokenizer) reportError(code ErrorCode) {
	t.errs.report(code, t.curCharPos)
}

// emit pushes fully-formed tokens onto the pending queue, flushing any
// in-progress text run first so text always precedes the structural
// token that interrupted it. This is where
// _examples/heathj-gobrowse/parser/tokenizer.go's emit() dropped
// attributes/self-closing from EndTag tokens; here emitCurrentTag
// drops an EndTag's attributes, closer to where the corresponding
// errors are raised, and keeps its SelfClosing flag after reporting it.
func (t *Tokenizer) emit(toks ...Token) {
	t.flushText()
	for _, tok := range toks {
		if tok.Type == StartTagToken {
			t.lastEmittedStartTagName = tok.TagName
		}
		t.pending = append(t.pending, tok)
	}
}

// appendText accumulates one character into the current text run,
// starting a new run (and recording its position) if none is open.
// This generalizes gobrowse's one-CharacterToken-per-rune emission so
// that a run of plain text tokenizes as a single Text token.
func (t *Tokenizer) appendText(r rune) {
	if !t.haveText {
		t.pendingTextStart = t.curCharPos
		t.haveText = true
	}
	t.pendingText.WriteRune(r)
}

func (t *Tokenizer) appendTextString(s string) {
	for _, r := range s {
		t.appendText(r)
	}
}

// flushText, if a text run is open, turns it into a Text token and
// queues it.
func (t *Tokenizer) flushText() {
	if !t.haveText {
		return
	}
	tok := t.b.textTokenString(t.pendingTextStart, t.pendingText.String())
	t.pending = append(t.pending, tok)
	t.pendingText.Reset()
	t.haveText = false
}

// gotoContent transitions to one of the five top-level content states
// and keeps the externally visible ParseMode field synchronized with
// it: a start tag entering script sets parse-mode to Script, entering
// plaintext sets it to Plaintext, and every other start tag resets it
// to PCData.
func (t *Tokenizer) gotoContent(m ParseMode) tokenizerState {
	t.ParseMode = m
	return m.state()
}

// resyncParseMode pulls the internal state machine into line with an
// externally written ParseMode. It only acts while the machine is
// sitting at one of the five top-level content states (stData through
// stPlaintext, the entry state gotoContent itself always lands on) --
// this is the content-state boundary spec §6 requires a caller to wait
// for before assigning ParseMode, e.g. a tree constructor setting
// t.ParseMode = RCData right after consuming a StartTag token for
// "title" and before the tokenizer reads title's content. stateToMode
// gives the mode the current state already implies; a mismatch means
// the field was written directly rather than through gotoContent, so
// the state is resynced to match it.
func (t *Tokenizer) resyncParseMode() {
	if t.state > stPlaintext {
		return
	}
	if stateToMode(t.state) == t.ParseMode {
		return
	}
	t.state = t.ParseMode.state()
}

func (t *Tokenizer) emitCurrentTag() tokenizerState {
	b := t.b
	if b.kind == endTagKind {
		if b.selfClosing {
			t.reportError(ErrEndTagCannotBeSelfClosed)
		}
		if len(b.attrs) > 0 {
			t.reportError(ErrEndTagCannotHaveAttributes)
			b.attrs = nil
		}
		t.emit(b.endTagToken(t.tagStartPos))
		return t.gotoContent(PCData)
	}

	tag := b.startTagToken(t.tagStartPos)
	t.emit(tag)
	switch tag.TagName {
	case "script":
		return t.gotoContent(Script)
	case "plaintext":
		return t.gotoContent(Plaintext)
	default:
		return t.gotoContent(PCData)
	}
}

// isApprEndTag reports whether the tag name accumulated so far is an
// "appropriate end tag": its lowercased name equals the most recently
// emitted start tag's name. Used by RCData/Rawtext/Script to decide
// whether a `</name` candidate ends the content mode or is literal
// text.
func (t *Tokenizer) isApprEndTag() bool {
	return t.lastEmittedStartTagName != "" && t.lastEmittedStartTagName == t.b.name.String()
}

// parserStateHandler is one state's transition function: given the
// current input character (ignored when eof is true) it returns
// whether the SAME character must be reconsumed by the returned next
// state, and that next state. Identical shape to
// _examples/heathj-gobrowse/parser/tokenizer.go's parserStateHandler.
type parserStateHandler func(t *Tokenizer, r rune, eof bool) (reconsume bool, next tokenizerState)

// dispatch maps every tokenizerState to its handler. Built once at
// package init instead of gobrowse's per-call switch (stateToParser),
// since the state space is fixed.
var dispatch [numStates]parserStateHandler

// numStates is a compile-time-checkable upper bound for the dispatch
// array, kept one greater than the last constant in state.go. Each
// state-family file (tokenizer_tag.go, tokenizer_text.go, ...)
// populates its own slice of dispatch from an init function.
const numStates = stNumericCharacterReferenceEnd + 1
