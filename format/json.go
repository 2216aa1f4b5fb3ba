package format

import (
	"encoding/json"
	"io"

	"github.com/ogiekako/ebuildls/ebuild/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildDocumentData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonDocument struct {
	Assignments []jsonAssignment `json:"assignments,omitempty"`
	Inherits    []jsonInherit    `json:"inherits,omitempty"`
}

type jsonAssignment struct {
	Name     string       `json:"name"`
	Kind     string       `json:"kind"`
	Value    *jsonString  `json:"value,omitempty"`
	Elements []jsonString `json:"elements,omitempty"`
	Range    jsonRange    `json:"range"`
}

type jsonInherit struct {
	Name  string    `json:"name"`
	Range jsonRange `json:"range"`
}

type jsonString struct {
	Text  string    `json:"text"`
	Range jsonRange `json:"range"`
}

type jsonRange struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

func (e *JSONEncoder) buildDocumentData() jsonDocument {
	return jsonDocument{
		Assignments: e.buildAssignments(),
		Inherits:    e.buildInherits(),
	}
}

func (e *JSONEncoder) buildAssignments() []jsonAssignment {
	assignments := e.doc.Assignments
	result := make([]jsonAssignment, len(assignments))
	for i, a := range assignments {
		entry := jsonAssignment{
			Name:  a.Name.Name,
			Range: buildRange(a.Name.Range),
		}
		switch v := a.Value.(type) {
		case parser.StringValue:
			entry.Kind = "string"
			sv := buildString(v)
			entry.Value = &sv
		case parser.ArrayValue:
			entry.Kind = "array"
			entry.Elements = buildElements(v.Elements)
		}
		result[i] = entry
	}
	return result
}

func (e *JSONEncoder) buildInherits() []jsonInherit {
	inherits := e.doc.Inherits
	result := make([]jsonInherit, len(inherits))
	for i, inh := range inherits {
		result[i] = jsonInherit{
			Name:  inh.Name,
			Range: buildRange(inh.Range),
		}
	}
	return result
}

func buildElements(elements []parser.StringValue) []jsonString {
	result := make([]jsonString, len(elements))
	for i, el := range elements {
		result[i] = buildString(el)
	}
	return result
}

func buildString(v parser.StringValue) jsonString {
	return jsonString{
		Text:  v.Value,
		Range: buildRange(v.Range),
	}
}

func buildRange(r parser.Range) jsonRange {
	return jsonRange{
		Start: jsonPosition{Line: r.Start.Line, Character: r.Start.Character},
		End:   jsonPosition{Line: r.End.Line, Character: r.End.Character},
	}
}
