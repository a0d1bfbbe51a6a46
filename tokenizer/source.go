package tokenizer

import (
	"bufio"
	"io"
)

// EOF is the sentinel character returned once the source is exhausted,
// distinct from any valid input code point. Modeled on the same
// convention as the standard library's text/scanner package.
const EOF rune = -1

// sourceChar is one logical (post CR/CRLF-collapse) character plus the
// number of raw input characters it was decoded from. rawLen is 2 only
// for a character produced by collapsing a CR LF pair; it is 1 in every
// other case, including a lone CR normalized to LF. rawLen is recorded
// only; Position.Offset counts logical characters, one per
// ReadAdvance, and indexing/back-stepping likewise operates on logical
// characters, so a single StepBack undoes one normalized character
// regardless of whether it came from a CR, an LF, or a collapsed CRLF
// pair.
type sourceChar struct {
	r      rune
	rawLen int
}

// Source is a random-access cursor over a fully decoded character
// sequence. CR and CR-LF are collapsed to LF while decoding.
//
// Grounded on _examples/heathj-gobrowse/parser/tokenizer.go, which
// drove an equivalent state machine directly off a *bufio.Reader; here
// the decode-ahead-of-time cursor is a distinct component so that
// StepBack/Seek are simple index moves rather than
// bufio.Reader.UnreadRune calls, which only support a single-rune undo.
type Source struct {
	chars []sourceChar
	idx   int
	pos   Position
}

// NewSource decodes r fully, applying CR/CR-LF normalization.
func NewSource(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)
	s := &Source{pos: NewPosition()}
	for {
		c, _, err := br.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if c == '\r' {
			next, _, perr := br.ReadRune()
			if perr == nil && next == '\n' {
				s.chars = append(s.chars, sourceChar{r: '\n', rawLen: 2})
				continue
			}
			if perr == nil {
				br.UnreadRune()
			}
			s.chars = append(s.chars, sourceChar{r: '\n', rawLen: 1})
			continue
		}
		s.chars = append(s.chars, sourceChar{r: c, rawLen: 1})
	}
	return s, nil
}

// Len returns the number of logical characters in the source.
func (s *Source) Len() int { return len(s.chars) }

// Index returns the current absolute logical index, in [0, Len()].
func (s *Source) Index() int { return s.idx }

// At returns the character at absolute logical index i, or EOF if i is
// out of range.
func (s *Source) At(i int) rune {
	if i < 0 || i >= len(s.chars) {
		return EOF
	}
	return s.chars[i].r
}

// CurrentPosition reports the position of the character that would be
// returned by the next ReadAdvance call.
func (s *Source) CurrentPosition() Position { return s.pos.Clone() }

// ReadAdvance reads the current character and advances the index by
// one, or returns EOF without moving once the source is exhausted.
func (s *Source) ReadAdvance() rune {
	if s.idx >= len(s.chars) {
		return EOF
	}
	c := s.chars[s.idx]
	s.idx++
	s.pos.Advance(c.r == '\n')
	return c.r
}

// PeekN returns, without moving the index, the string formed by the
// next n logical characters (fewer if the source ends first).
func (s *Source) PeekN(n int) string {
	end := s.idx + n
	if end > len(s.chars) {
		end = len(s.chars)
	}
	if end <= s.idx {
		return ""
	}
	rs := make([]rune, 0, end-s.idx)
	for _, c := range s.chars[s.idx:end] {
		rs = append(rs, c.r)
	}
	return string(rs)
}

// StepBack moves the index back n logical characters, restoring the
// position tracker in lock-step. Stepping back further than the
// characters actually consumed is silently clamped to index 0.
func (s *Source) StepBack(n int) {
	for i := 0; i < n && s.idx > 0; i++ {
		s.idx--
		s.pos.Back(s.chars[s.idx].r == '\n')
	}
}

// Seek moves the index to an absolute logical position, recomputing the
// position tracker along the way. Used by the character-reference
// longest-prefix back-off.
func (s *Source) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(s.chars) {
		i = len(s.chars)
	}
	if i == s.idx {
		return
	}
	if i < s.idx {
		s.StepBack(s.idx - i)
		return
	}
	for s.idx < i {
		s.ReadAdvance()
	}
}

// ContinuesWithInsensitive reports whether the upcoming characters
// case-insensitively match want, without moving the index. Used for
// keywords such as doctype/PUBLIC/SYSTEM.
func (s *Source) ContinuesWithInsensitive(want string) bool {
	wantRunes := []rune(want)
	peeked := []rune(s.PeekN(len(wantRunes)))
	if len(peeked) != len(wantRunes) {
		return false
	}
	for i, wr := range wantRunes {
		if toASCIILower(peeked[i]) != toASCIILower(wr) {
			return false
		}
	}
	return true
}

// ContinuesWithSensitive reports whether the upcoming characters
// exactly match want, without moving the index. Used for the CDATA
// sentinel, which unlike doctype keywords is case sensitive.
func (s *Source) ContinuesWithSensitive(want string) bool {
	return s.PeekN(len([]rune(want))) == want
}
