package plan

import (
	"bufio"
	"io"
)

// Scanner walks a plan's text one byte at a time with a single byte of
// lookahead. Entries are delimited structurally: a line beginning with a
// non-blank character starts a new entry, and any immediately following
// lines beginning with a space or tab are that entry's description.
type Scanner struct {
	r *bufio.Reader
}

// NewScanner returns a Scanner reading from r. The caller is expected to
// position r either at the very start of the plan text or at the first byte
// of a title line.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// peek returns the next byte without consuming it. ok is false at end of
// input.
func (s *Scanner) peek() (c byte, ok bool, err error) {
	b, err := s.r.Peek(1)
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b[0], true, nil
}

// advance consumes the byte peek reported.
func (s *Scanner) advance() error {
	_, err := s.r.Discard(1)
	return err
}

// next consumes and returns one byte. ok is false at end of input.
func (s *Scanner) next() (c byte, ok bool, err error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// Skip consumes bytes through the end of the current entry, leaving the
// stream positioned at the first byte of the next entry's title line. It
// reports whether such an entry exists; when it returns false the stream
// position is unspecified.
func (s *Scanner) Skip() (more bool, err error) {
	for {
		// Consume through the end of the current line.
		for {
			c, ok, err := s.next()
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			if c == '\n' {
				break
			}
		}
		c, ok, err := s.peek()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if !isBlank(c) {
			return true, nil
		}
		// A description line; the next pass consumes it.
	}
}

// Count returns the number of entries in the stream. It must be called on a
// freshly positioned Scanner. Content before the first title line is not
// counted: if the text does not begin with one, counting starts at the first
// line found by Skip.
func (s *Scanner) Count() (int, error) {
	c, ok, err := s.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	entries := 0
	if !isBlank(c) {
		entries++
	}
	for {
		more, err := s.Skip()
		if err != nil {
			return 0, err
		}
		if !more {
			return entries, nil
		}
		entries++
	}
}

// Render writes the entry at the current position to w: the title line
// verbatim, then each description line with its leading whitespace collapsed
// to a single tab. A trailing newline is forced even when the source lacks
// one. It reports whether another entry follows; when it does, the stream is
// left at the first byte of that entry's title line.
func (s *Scanner) Render(w io.Writer) (more bool, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	// Title line.
	for {
		c, ok, rerr := s.next()
		if rerr != nil {
			return false, rerr
		}
		if !ok {
			bw.WriteByte('\n')
			return false, nil
		}
		bw.WriteByte(c)
		if c == '\n' {
			break
		}
	}

	// Description lines.
	for {
		c, ok, rerr := s.peek()
		if rerr != nil {
			return false, rerr
		}
		if !ok {
			return false, nil
		}
		if !isBlank(c) {
			return true, nil
		}
		// Collapse the leading whitespace run to one tab.
		for ok && isBlank(c) {
			if rerr := s.advance(); rerr != nil {
				return false, rerr
			}
			c, ok, rerr = s.peek()
			if rerr != nil {
				return false, rerr
			}
		}
		bw.WriteByte('\t')
		for {
			c, ok, rerr := s.next()
			if rerr != nil {
				return false, rerr
			}
			if !ok {
				bw.WriteByte('\n')
				return false, nil
			}
			bw.WriteByte(c)
			if c == '\n' {
				break
			}
		}
	}
}
