// Package eclassdoc parses the @ECLASS documentation headers of
// Gentoo and ChromiumOS eclass files.
package eclassdoc

// Doc is the documentation of one eclass file.
type Doc struct {
	Name           string // from @ECLASS
	Maintainer     string
	Author         string
	Blurb          string
	Description    string
	Deprecated     string // replacement, or "none"
	SupportedEAPIs string
	VCSURL         string
	Variables      []*VariableDoc
	Functions      []*FunctionDoc
}

// VariableDoc documents one @ECLASS_VARIABLE block.
type VariableDoc struct {
	Name           string
	Description    string
	Required       bool
	DefaultUnset   bool
	Internal       bool
	PreInherit     bool
	UserVariable   bool
	OutputVariable bool
}

// FunctionDoc documents one @FUNCTION block.
type FunctionDoc struct {
	Name        string
	Usage       string
	Return      string
	Description string
	Internal    bool
	Deprecated  string
}

// Variable returns the documentation block of the named variable.
func (d *Doc) Variable(name string) (*VariableDoc, bool) {
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Function returns the documentation block of the named function.
func (d *Doc) Function(name string) (*FunctionDoc, bool) {
	for _, f := range d.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
