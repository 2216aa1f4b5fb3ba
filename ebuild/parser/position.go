package parser

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Position is a zero-based location in a document. Character counts
// UTF-16 code units from the start of the line, which is what editors
// speak over the wire, not bytes and not runes.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is half-open: Start inclusive, End exclusive.
type Range struct {
	Start Position
	End   Position
}

// PositionIndex converts byte offsets to Positions. It records the
// byte offset of every line start once, so a lookup is a binary
// search plus a walk over a single line.
type PositionIndex struct {
	text       string
	lineStarts []int
}

func NewPositionIndex(text string) *PositionIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &PositionIndex{text: text, lineStarts: starts}
}

// PositionAt maps a byte offset to a Position. Offsets outside
// [0, len(text)] are a caller bug and panic rather than clamp.
// len(text) itself is valid and maps to one past the last character.
func (x *PositionIndex) PositionAt(offset int) Position {
	if offset < 0 || offset > len(x.text) {
		panic(fmt.Sprintf("parser: offset %d out of range [0, %d]", offset, len(x.text)))
	}
	line := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > offset
	}) - 1
	return Position{
		Line:      uint32(line),
		Character: utf16Width(x.text[x.lineStarts[line]:offset]),
	}
}

// RangeBetween maps a half-open byte interval to a Range.
func (x *PositionIndex) RangeBetween(start, end int) Range {
	return Range{Start: x.PositionAt(start), End: x.PositionAt(end)}
}

// OffsetAt is the editor-facing inverse of PositionAt. Editor cursors
// routinely sit past the end of a line or file, so characters beyond
// the line clamp to the line end and lines beyond the text clamp to
// len(text).
func (x *PositionIndex) OffsetAt(pos Position) int {
	line := int(pos.Line)
	if line >= len(x.lineStarts) {
		return len(x.text)
	}
	off := x.lineStarts[line]
	end := x.lineEnd(line)
	units := uint32(0)
	for off < end && units < pos.Character {
		r, size := utf8.DecodeRuneInString(x.text[off:])
		units += uint32(utf16.RuneLen(r))
		off += size
	}
	return off
}

// LineRange returns the byte interval of a line without its trailing
// newline. ok is false past the last line.
func (x *PositionIndex) LineRange(line uint32) (start, end int, ok bool) {
	if int(line) >= len(x.lineStarts) {
		return 0, 0, false
	}
	return x.lineStarts[line], x.lineEnd(int(line)), true
}

func (x *PositionIndex) lineEnd(line int) int {
	if line+1 < len(x.lineStarts) {
		return x.lineStarts[line+1] - 1
	}
	return len(x.text)
}

// utf16Width counts the UTF-16 code units of s. Runes outside the BMP
// take two units; invalid bytes decode to U+FFFD and take one.
func utf16Width(s string) uint32 {
	units := uint32(0)
	for _, r := range s {
		units += uint32(utf16.RuneLen(r))
	}
	return units
}
