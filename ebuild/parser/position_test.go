package parser

import (
	"fmt"
	"testing"
)

func TestPositionAt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   Position
	}{
		{"start of text", "abc", 0, Position{0, 0}},
		{"middle of line", "abc", 2, Position{0, 2}},
		{"end of text", "abc", 3, Position{0, 3}},
		{"at the newline", "ab\ncd", 2, Position{0, 2}},
		{"start of second line", "ab\ncd", 3, Position{1, 0}},
		{"middle of second line", "ab\ncd", 4, Position{1, 1}},
		{"after trailing newline", "ab\n", 3, Position{1, 0}},
		{"empty text", "", 0, Position{0, 0}},
		{"empty lines", "\n\n", 2, Position{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPositionIndex(tt.text).PositionAt(tt.offset)
			if got != tt.want {
				t.Errorf("PositionAt(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPositionAtCountsUTF16Units(t *testing.T) {
	// "é" is 2 bytes and one UTF-16 unit; "😀" is 4 bytes and a
	// surrogate pair, so it counts as two units.
	tests := []struct {
		name   string
		text   string
		offset int
		want   Position
	}{
		{"bmp rune is one unit", "é=1", 2, Position{0, 1}},
		{"after bmp rune", "é=1", 3, Position{0, 2}},
		{"astral rune is two units", "a😀b", 5, Position{0, 3}},
		{"before astral rune", "a😀b", 1, Position{0, 1}},
		{"astral rune on second line", "x\n😀y", 6, Position{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPositionIndex(tt.text).PositionAt(tt.offset)
			if got != tt.want {
				t.Errorf("PositionAt(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPositionAtMatchesNaiveScan(t *testing.T) {
	text := "EAPI=7\n\ninherit cros-workon 😀\nKEYWORDS=\"~*\"\n"
	index := NewPositionIndex(text)
	for offset := 0; offset <= len(text); offset++ {
		line, char := uint32(0), uint32(0)
		for _, r := range text[:offset] {
			if r == '\n' {
				line++
				char = 0
			} else if r >= 0x10000 {
				char += 2
			} else {
				char++
			}
		}
		want := Position{line, char}
		if got := index.PositionAt(offset); got != want {
			t.Errorf("PositionAt(%d) = %v, want %v", offset, got, want)
		}
	}
}

func TestPositionAtOutOfRange(t *testing.T) {
	for _, offset := range []int{-1, 4} {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("PositionAt(%d) did not panic", offset)
				}
			}()
			NewPositionIndex("abc").PositionAt(offset)
		})
	}
}

func TestOffsetAt(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  Position
		want int
	}{
		{"start", "abc", Position{0, 0}, 0},
		{"middle", "abc", Position{0, 2}, 2},
		{"second line", "ab\ncd", Position{1, 1}, 4},
		{"column clamps to line end", "ab\ncd\n", Position{0, 99}, 2},
		{"line clamps to text end", "ab\ncd", Position{9, 0}, 5},
		{"astral rune takes two units", "a😀b", Position{0, 3}, 5},
		{"empty text", "", Position{0, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPositionIndex(tt.text).OffsetAt(tt.pos)
			if got != tt.want {
				t.Errorf("OffsetAt(%v) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRangeBetween(t *testing.T) {
	index := NewPositionIndex("FOO=(\n\tbar\n)\n")
	got := index.RangeBetween(4, 12)
	want := Range{Position{0, 4}, Position{2, 1}}
	if got != want {
		t.Errorf("RangeBetween(4, 12) = %v, want %v", got, want)
	}
}

func TestLineRange(t *testing.T) {
	index := NewPositionIndex("ab\ncde\n")

	tests := []struct {
		line       uint32
		start, end int
		ok         bool
	}{
		{0, 0, 2, true},
		{1, 3, 6, true},
		{2, 7, 7, true},
		{3, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("line %d", tt.line), func(t *testing.T) {
			start, end, ok := index.LineRange(tt.line)
			if start != tt.start || end != tt.end || ok != tt.ok {
				t.Errorf("LineRange(%d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.line, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}
