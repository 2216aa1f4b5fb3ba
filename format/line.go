package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/ogiekako/ebuildls/ebuild/parser"
)

type LineEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	d := e.doc

	for _, a := range d.Assignments {
		fmt.Fprintf(&sb, "assignment\t%s\t%s\t%s\n",
			a.Name.Name,
			valueKind(a.Value),
			valueText(a.Value),
		)
	}

	for _, inh := range d.Inherits {
		fmt.Fprintf(&sb, "inherit\t%s\n", inh.Name)
	}

	return []byte(sb.String()), nil
}

func valueKind(v parser.Value) string {
	switch v.(type) {
	case parser.ArrayValue:
		return "array"
	default:
		return "string"
	}
}

func valueText(v parser.Value) string {
	switch v := v.(type) {
	case parser.StringValue:
		return v.Value
	case parser.ArrayValue:
		if len(v.Elements) == 0 {
			return "-"
		}
		var parts []string
		for _, el := range v.Elements {
			parts = append(parts, el.Value)
		}
		return strings.Join(parts, ",")
	}
	return ""
}
