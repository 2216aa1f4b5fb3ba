package parser

// Value is the right-hand side of an assignment: either a StringValue
// or an ArrayValue.
type Value interface {
	value()
}

// StringValue is a single string token. For quoted tokens Range
// covers the text between the quotes, excluding both.
type StringValue struct {
	Value string
	Range Range
}

// ArrayValue is a parenthesized list. Range covers the opening paren
// through one past the closing paren; every element range is
// contained in it.
type ArrayValue struct {
	Elements []StringValue
	Range    Range
}

func (StringValue) value() {}
func (ArrayValue) value()  {}

// VariableName is the left-hand side of an assignment. Range covers
// the identifier only, not the '='.
type VariableName struct {
	Name  string
	Range Range
}

// Assignment is one NAME=value construct found at a line start.
type Assignment struct {
	Name  VariableName
	Value Value
}

// EclassName is one entry of an inherit list.
type EclassName struct {
	Name  string
	Range Range
}
