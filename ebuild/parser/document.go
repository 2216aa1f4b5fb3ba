package parser

// Document holds everything Parse extracted, in source order.
// Duplicate assignments to the same name are all recorded; the
// getters resolve them to the last one, matching how the shell would.
type Document struct {
	Assignments []Assignment
	Inherits    []EclassName
}

// GetValue returns the value of the last assignment to name.
func (d *Document) GetValue(name string) (Value, bool) {
	for i := len(d.Assignments) - 1; i >= 0; i-- {
		if d.Assignments[i].Name.Name == name {
			return d.Assignments[i].Value, true
		}
	}
	return nil, false
}

// GetStringValues returns the elements of an array value, or a scalar
// wrapped in a one-element slice, so callers can treat both shapes
// uniformly.
func (d *Document) GetStringValues(name string) ([]StringValue, bool) {
	v, ok := d.GetValue(name)
	if !ok {
		return nil, false
	}
	switch v := v.(type) {
	case StringValue:
		return []StringValue{v}, true
	case ArrayValue:
		return v.Elements, true
	}
	return nil, false
}

// GetString returns the text of a scalar value. Arrays report false.
func (d *Document) GetString(name string) (string, bool) {
	v, ok := d.GetValue(name)
	if !ok {
		return "", false
	}
	sv, ok := v.(StringValue)
	if !ok {
		return "", false
	}
	return sv.Value, true
}

// GetStrings is the text projection of GetStringValues.
func (d *Document) GetStrings(name string) ([]string, bool) {
	values, ok := d.GetStringValues(name)
	if !ok {
		return nil, false
	}
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = v.Value
	}
	return texts, true
}

// HasInherit reports whether the document inherits the named eclass.
func (d *Document) HasInherit(name string) bool {
	for _, e := range d.Inherits {
		if e.Name == name {
			return true
		}
	}
	return false
}
