package format

import (
	"encoding"

	"github.com/ogiekako/ebuildls/ebuild/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *parser.Document) error
}
