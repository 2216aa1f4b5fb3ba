package parser

import "testing"

func TestAnchorFinderAssignments(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		varName   string
		start     int
		nameEnd   int
		bodyStart int
	}{
		{"at start of text", "FOO=1", "FOO", 0, 3, 4},
		{"after newline", "x\nFOO=1", "FOO", 2, 5, 6},
		{"underscore name", "_FOO_BAR=1", "_FOO_BAR", 0, 8, 9},
		{"lowercase name", "foo=1", "foo", 0, 3, 4},
		{"empty value", "FOO=", "FOO", 0, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := NewAnchorFinder(tt.text).Find(0)
			if !ok {
				t.Fatalf("Find(0) found nothing")
			}
			if a.Kind != AnchorAssignment {
				t.Errorf("Kind = %v, want %v", a.Kind, AnchorAssignment)
			}
			if a.Name != tt.varName {
				t.Errorf("Name = %q, want %q", a.Name, tt.varName)
			}
			if a.Start != tt.start || a.NameEnd != tt.nameEnd || a.BodyStart != tt.bodyStart {
				t.Errorf("offsets = (%d, %d, %d), want (%d, %d, %d)",
					a.Start, a.NameEnd, a.BodyStart, tt.start, tt.nameEnd, tt.bodyStart)
			}
		})
	}
}

func TestAnchorFinderInherit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		bodyStart int
	}{
		{"single space", "inherit foo", 8},
		{"several spaces", "inherit   foo", 10},
		{"tab", "inherit\tfoo", 8},
		{"after newline", "x\ninherit foo", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := NewAnchorFinder(tt.text).Find(0)
			if !ok {
				t.Fatalf("Find(0) found nothing")
			}
			if a.Kind != AnchorInherit {
				t.Errorf("Kind = %v, want %v", a.Kind, AnchorInherit)
			}
			if a.BodyStart != tt.bodyStart {
				t.Errorf("BodyStart = %d, want %d", a.BodyStart, tt.bodyStart)
			}
		})
	}
}

func TestAnchorFinderRejectsNonAnchors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"indented assignment", "  FOO=1"},
		{"space before equals", "FOO =1"},
		{"export prefix", "export FOO=1"},
		{"local prefix", "\tlocal foo=1"},
		{"name starting with digit", "1FOO=1"},
		{"mid-line assignment", "echo FOO=1"},
		{"bare inherit at line end", "inherit\nfoo"},
		{"bare inherit at eof", "inherit"},
		{"inherit as word prefix", "inherits foo"},
		{"indented inherit", "  inherit foo"},
		{"append operator", "FOO+=bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a, ok := NewAnchorFinder(tt.text).Find(0); ok {
				t.Errorf("Find(0) = %+v, want none", a)
			}
		})
	}
}

func TestAnchorFinderResumesFromOffset(t *testing.T) {
	text := "A=1\nB=2\nC=3\n"
	finder := NewAnchorFinder(text)

	a, ok := finder.Find(1)
	if !ok || a.Name != "B" {
		t.Errorf("Find(1) = %+v, %v, want anchor B", a, ok)
	}

	// Resuming mid-line must not manufacture an anchor there.
	a, ok = finder.Find(5)
	if !ok || a.Name != "C" {
		t.Errorf("Find(5) = %+v, %v, want anchor C", a, ok)
	}

	if a, ok := finder.Find(9); ok {
		t.Errorf("Find(9) = %+v, want none", a)
	}

	// Finds are independent of each other, not a consuming stream.
	a, ok = finder.Find(0)
	if !ok || a.Name != "A" {
		t.Errorf("Find(0) = %+v, %v, want anchor A", a, ok)
	}
}

func TestAnchorFinderInheritNamedVariable(t *testing.T) {
	// "inherit" on the left of '=' is a plain variable name.
	a, ok := NewAnchorFinder("inherit=1").Find(0)
	if !ok {
		t.Fatalf("Find(0) found nothing")
	}
	if a.Kind != AnchorAssignment || a.Name != "inherit" {
		t.Errorf("got %+v, want assignment named inherit", a)
	}
}
