// Package encode writes IR nodes out as XML or binary property lists, JSON,
// YAML, or CBOR, with optional colorized text output for terminals.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nskeyed-format/go-nskeyed/format"
	"github.com/nskeyed-format/go-nskeyed/ir"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"howett.net/plist"
)

type EncState struct {
	indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.XMLFormat, format.BinaryFormat:
		return encodePlist(node, w, es)
	case format.JSONFormat:
		if es.Color != nil {
			if err := encodeColor(node, w, es, 0); err != nil {
				return err
			}
			return writeString(w, "\n")
		}
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	case format.CBORFormat:
		return encodeCBOR(node, w)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func encodePlist(node *ir.Node, w io.Writer, es *EncState) error {
	pf := plist.XMLFormat
	if es.format.IsBinary() {
		pf = plist.BinaryFormat
	}
	enc := plist.NewEncoderForFormat(w, pf)
	if es.format.IsXML() && es.indent > 0 {
		enc.Indent(strings.Repeat(" ", es.indent))
	}
	return enc.Encode(plistValue(node))
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", es.indent))
	return enc.Encode(jsonValue(node))
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encodeCBOR(node *ir.Node, w io.Writer) error {
	d, err := cbor.Marshal(plistValue(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
