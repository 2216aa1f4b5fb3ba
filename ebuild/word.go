package ebuild

import (
	"github.com/ogiekako/ebuildls/ebuild/parser"
)

// WordAt returns the identifier-like word covering pos, with its
// range. The word alphabet is letters, digits, '_' and '-', which
// covers variable names, phase functions, and eclass names. A cursor
// on whitespace or punctuation finds no word.
func WordAt(text string, index *parser.PositionIndex, pos parser.Position) (string, parser.Range, bool) {
	start, end, ok := index.LineRange(pos.Line)
	if !ok {
		return "", parser.Range{}, false
	}
	off := index.OffsetAt(pos)
	lo := off
	for lo > start && isWordByte(text[lo-1]) {
		lo--
	}
	hi := off
	for hi < end && isWordByte(text[hi]) {
		hi++
	}
	if lo == hi {
		return "", parser.Range{}, false
	}
	return text[lo:hi], index.RangeBetween(lo, hi), true
}

// InheritAt returns the inherited eclass whose range covers pos.
func InheritAt(doc *parser.Document, pos parser.Position) (parser.EclassName, bool) {
	for _, e := range doc.Inherits {
		if positionInRange(pos, e.Range) {
			return e, true
		}
	}
	return parser.EclassName{}, false
}

// AssignmentAt returns the assignment whose name range covers pos.
func AssignmentAt(doc *parser.Document, pos parser.Position) (parser.Assignment, bool) {
	for _, a := range doc.Assignments {
		if positionInRange(pos, a.Name.Range) {
			return a, true
		}
	}
	return parser.Assignment{}, false
}

func positionInRange(pos parser.Position, r parser.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character > r.End.Character {
		return false
	}
	return true
}

func isWordByte(ch byte) bool {
	return ch == '_' || ch == '-' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
