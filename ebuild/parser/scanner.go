package parser

import "fmt"

// ParseError is the parser's single failure mode: input ended inside
// a quoted string or before an array's closing paren.
type ParseError struct {
	Offset int
	Pos    Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: unclosed paren or string", e.Pos.Line+1, e.Pos.Character+1)
}

// Scanner reads value tokens and eclass-name lists from its cursor
// onward. The document parser seeks the cursor to an anchor's body
// and resumes anchor finding from wherever scanning stopped.
type Scanner struct {
	text  string
	index *PositionIndex
	pos   int
}

func NewScanner(text string, index *PositionIndex) *Scanner {
	return &Scanner{text: text, index: index}
}

func (s *Scanner) Offset() int {
	return s.pos
}

func (s *Scanner) SetOffset(offset int) {
	s.pos = offset
}

// NextValue reads the value of an assignment: a parenthesized array
// if the next non-space character is '(', otherwise a single string
// token read at the unmoved cursor. "FOO= bar" therefore assigns the
// empty string; the space skip exists only to spot the paren.
func (s *Scanner) NextValue() (Value, error) {
	if open, ok := s.parenAhead(); ok {
		return s.scanArray(open)
	}
	sv, err := s.scanString()
	if err != nil {
		return nil, err
	}
	return sv, nil
}

// NextEclassName reads the next name of an inherit list, or nil at
// the end of the list. A name followed directly by a newline ends the
// list on the following call without consuming the newline. Any other
// trailing separator triggers the whitespace-and-comment skip, which
// eats newlines too, so a trailing space or comment continues the
// list onto the next physical line.
func (s *Scanner) NextEclassName() (*EclassName, error) {
	sv, err := s.scanString()
	if err != nil {
		return nil, err
	}
	if sv.Value == "" {
		return nil, nil
	}
	if s.peek() != '\n' {
		s.skipSpaceAndComments()
	}
	return &EclassName{Name: sv.Value, Range: sv.Range}, nil
}

func (s *Scanner) parenAhead() (int, bool) {
	i := s.pos
	for i < len(s.text) && s.text[i] == ' ' {
		i++
	}
	if i < len(s.text) && s.text[i] == '(' {
		return i, true
	}
	return 0, false
}

func (s *Scanner) scanArray(open int) (Value, error) {
	s.pos = open + 1
	arr := ArrayValue{}
	for {
		s.skipSpaceAndComments()
		if s.eof() {
			return nil, s.errorAt(s.pos)
		}
		if s.peek() == ')' {
			s.pos++
			arr.Range = s.index.RangeBetween(open, s.pos)
			return arr, nil
		}
		el, err := s.scanString()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)
	}
}

// scanString reads one string token at the cursor. A quoted token has
// no escape sequences and its range excludes the quotes. A cursor
// already at a tab, newline, space, or the end of input yields a
// zero-length token without moving.
func (s *Scanner) scanString() (StringValue, error) {
	if s.peek() == '"' {
		s.pos++
		start := s.pos
		for !s.eof() && s.peek() != '"' {
			s.pos++
		}
		if s.eof() {
			return StringValue{}, s.errorAt(s.pos)
		}
		sv := StringValue{
			Value: s.text[start:s.pos],
			Range: s.index.RangeBetween(start, s.pos),
		}
		s.pos++
		return sv, nil
	}
	start := s.pos
	for !s.eof() && !isWordEnd(s.peek()) {
		s.pos++
	}
	return StringValue{
		Value: s.text[start:s.pos],
		Range: s.index.RangeBetween(start, s.pos),
	}, nil
}

func (s *Scanner) skipSpaceAndComments() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\n':
			s.pos++
		case '#':
			for !s.eof() && s.peek() != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *Scanner) eof() bool {
	return s.pos >= len(s.text)
}

func (s *Scanner) errorAt(offset int) error {
	return &ParseError{Offset: offset, Pos: s.index.PositionAt(offset)}
}

func isWordEnd(ch byte) bool {
	return ch == '\t' || ch == '\n' || ch == ' ' || ch == ')'
}
