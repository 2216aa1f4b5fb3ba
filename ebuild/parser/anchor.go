package parser

import (
	"regexp"
	"sort"
)

type AnchorKind int

const (
	AnchorAssignment AnchorKind = iota
	AnchorInherit
)

// Anchor marks a construct candidate at a line beginning: a variable
// assignment or an inherit list.
type Anchor struct {
	Kind AnchorKind
	// Start is the offset of the first matched character.
	Start int
	// Name and NameEnd describe the identifier of an assignment
	// anchor; NameEnd is the offset of the '='.
	Name    string
	NameEnd int
	// BodyStart is where scanning takes over: one past the '=' of an
	// assignment, or past the whitespace run after "inherit".
	BodyStart int
}

var anchorPattern = regexp.MustCompile(`(?m)^(?:([A-Za-z_][A-Za-z0-9_]*)=|inherit[ \t]+)`)

// AnchorFinder locates every anchor of a text up front, against the
// full text, so that resuming from a later offset can never turn the
// middle of a line into a line beginning. A bare "inherit" with
// nothing after it on the line is not an anchor.
type AnchorFinder struct {
	anchors []Anchor
}

func NewAnchorFinder(text string) *AnchorFinder {
	f := &AnchorFinder{}
	for _, m := range anchorPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[2] >= 0 {
			f.anchors = append(f.anchors, Anchor{
				Kind:      AnchorAssignment,
				Start:     m[0],
				Name:      text[m[2]:m[3]],
				NameEnd:   m[3],
				BodyStart: m[1],
			})
		} else {
			f.anchors = append(f.anchors, Anchor{
				Kind:      AnchorInherit,
				Start:     m[0],
				BodyStart: m[1],
			})
		}
	}
	return f
}

// Find returns the first anchor starting at or after offset. The
// parser calls it with the scanner's cursor after each construct,
// which skips anchors swallowed by a multi-line array or string.
func (f *AnchorFinder) Find(offset int) (Anchor, bool) {
	i := sort.Search(len(f.anchors), func(i int) bool {
		return f.anchors[i].Start >= offset
	})
	if i == len(f.anchors) {
		return Anchor{}, false
	}
	return f.anchors[i], true
}
