// Package parser extracts variable assignments and inherit lists from
// Portage ebuild and eclass files. It is not a shell parser: only
// constructs beginning at a line start are recognized, everything
// else is skipped, and every extracted piece carries its source range
// in editor coordinates.
package parser

// Parse scans text for NAME=value assignments and inherit lines. The
// first unterminated string or array aborts the whole parse with a
// *ParseError and no document.
func Parse(text string) (*Document, error) {
	index := NewPositionIndex(text)
	finder := NewAnchorFinder(text)
	sc := NewScanner(text, index)

	doc := &Document{}
	pos := 0
	for {
		a, ok := finder.Find(pos)
		if !ok {
			return doc, nil
		}
		sc.SetOffset(a.BodyStart)
		switch a.Kind {
		case AnchorAssignment:
			value, err := sc.NextValue()
			if err != nil {
				return nil, err
			}
			doc.Assignments = append(doc.Assignments, Assignment{
				Name: VariableName{
					Name:  a.Name,
					Range: index.RangeBetween(a.Start, a.NameEnd),
				},
				Value: value,
			})
		case AnchorInherit:
			for {
				name, err := sc.NextEclassName()
				if err != nil {
					return nil, err
				}
				if name == nil {
					break
				}
				doc.Inherits = append(doc.Inherits, *name)
			}
		}
		pos = sc.Offset()
	}
}
