package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/nskeyed-format/go-nskeyed/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.RealType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.UIDType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Type = ir.DateType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = ir.DataType
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func jsonText(node *ir.Node) ([]byte, error) {
	return json.Marshal(jsonValue(node))
}

// encodeColor writes node as indented JSON with per-type coloring.
func encodeColor(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	pad := strings.Repeat(" ", es.indent*(depth+1))
	closePad := strings.Repeat(" ", es.indent*depth)
	switch node.Type {
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeString(w, es.Color(node.Type, SepColor, "[]"))
		}
		if err := writeString(w, es.Color(node.Type, SepColor, "[")+"\n"); err != nil {
			return err
		}
		for i, v := range node.Values {
			if err := writeString(w, pad); err != nil {
				return err
			}
			if err := encodeColor(v, w, es, depth+1); err != nil {
				return err
			}
			if i < len(node.Values)-1 {
				if err := writeString(w, es.Color(node.Type, SepColor, ",")); err != nil {
					return err
				}
			}
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		return writeString(w, closePad+es.Color(node.Type, SepColor, "]"))
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeString(w, es.Color(node.Type, SepColor, "{}"))
		}
		if err := writeString(w, es.Color(node.Type, SepColor, "{")+"\n"); err != nil {
			return err
		}
		for i, f := range node.Fields {
			quoted, err := json.Marshal(fieldName(f))
			if err != nil {
				return err
			}
			field := es.Color(node.Type, FieldColor, string(quoted))
			sep := es.Color(node.Type, SepColor, ":")
			if err := writeString(w, pad+field+sep+" "); err != nil {
				return err
			}
			if err := encodeColor(node.Values[i], w, es, depth+1); err != nil {
				return err
			}
			if i < len(node.Fields)-1 {
				if err := writeString(w, es.Color(node.Type, SepColor, ",")); err != nil {
					return err
				}
			}
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		return writeString(w, closePad+es.Color(node.Type, SepColor, "}"))
	default:
		d, err := jsonText(node)
		if err != nil {
			return err
		}
		return writeString(w, es.Color(node.Type, ValueColor, string(d)))
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
