package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	XMLFormat Format = iota
	BinaryFormat
	JSONFormat
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":      XMLFormat,
		"xml":    XMLFormat,
		"b":      BinaryFormat,
		"bin":    BinaryFormat,
		"binary": BinaryFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"c":      CBORFormat,
		"cbor":   CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case BinaryFormat:
		return []byte("binary"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool    { return f == XMLFormat }
func (f Format) IsBinary() bool { return f == BinaryFormat }
func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }
func (f Format) IsCBOR() bool   { return f == CBORFormat }

// IsText reports whether the format encodes to human readable text.
func (f Format) IsText() bool {
	switch f {
	case XMLFormat, JSONFormat, YAMLFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat, BinaryFormat:
		return ".plist"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, BinaryFormat, JSONFormat, YAMLFormat, CBORFormat}
}
