package unarchive

import (
	"fmt"
	"io"

	"github.com/nskeyed-format/go-nskeyed/ir"
	"github.com/nskeyed-format/go-nskeyed/parse"
)

const (
	archiverName    = "NSKeyedArchiver"
	archiverVersion = 100000

	archiverKey = "$archiver"
	versionKey  = "$version"
	topKey      = "$top"
	objectsKey  = "$objects"

	classKey       = "$class"
	classesKey     = "$classes"
	nsKeysKey      = "NS.keys"
	nsObjectsKey   = "NS.objects"
	nullObjectName = "$null"
)

// Unarchiver decodes one NSKeyedArchiver document into a plain value tree.
type Unarchiver struct {
	objects []*ir.Node
	top     *ir.Node
	opts    unarchiveOpts
}

// New validates the archive header of root and returns an Unarchiver over
// its object table. The four header keys are consumed from root; on error no
// partial state is returned.
func New(root *ir.Node, opts ...Option) (*Unarchiver, error) {
	u := &Unarchiver{}
	for _, opt := range opts {
		opt(&u.opts)
	}
	if root == nil || root.Type != ir.ObjectType {
		return nil, wrongType("root", "Dictionary")
	}

	archiver, err := takeHeaderKey(root, archiverKey)
	if err != nil {
		return nil, err
	}
	if archiver.Type != ir.StringType {
		return nil, wrongType(archiverKey, "String")
	}
	if archiver.String != archiverName {
		return nil, fmt.Errorf("%w: only %q is supported", ErrUnsupportedArchiver, archiverName)
	}

	version, err := takeHeaderKey(root, versionKey)
	if err != nil {
		return nil, err
	}
	versionNum, ok := version.AsUint()
	if !ok {
		return nil, wrongType(versionKey, "Number")
	}
	if versionNum != archiverVersion {
		return nil, fmt.Errorf("%w: only '%d' is supported", ErrUnsupportedVersion, archiverVersion)
	}

	top, err := takeHeaderKey(root, topKey)
	if err != nil {
		return nil, err
	}
	if top.Type != ir.ObjectType {
		return nil, wrongType(topKey, "Dictionary")
	}

	objects, err := takeHeaderKey(root, objectsKey)
	if err != nil {
		return nil, err
	}
	if objects.Type != ir.ArrayType {
		return nil, wrongType(objectsKey, "Array")
	}

	u.top = top
	u.objects = objects.Values
	return u, nil
}

// Bytes parses a serialized plist and returns an Unarchiver for it.
func Bytes(d []byte, opts ...Option) (*Unarchiver, error) {
	root, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return New(root, opts...)
}

// Reader parses a plist from a seekable byte stream and returns an
// Unarchiver for it.
func Reader(r io.ReadSeeker, opts ...Option) (*Unarchiver, error) {
	root, err := parse.Reader(r)
	if err != nil {
		return nil, err
	}
	return New(root, opts...)
}

// File parses the plist file at path and returns an Unarchiver for it.
func File(path string, opts ...Option) (*Unarchiver, error) {
	root, err := parse.File(path)
	if err != nil {
		return nil, err
	}
	return New(root, opts...)
}

// Decode resolves every root entry of the archive and assembles the output
// value tree. Each root entry must be a reference and must resolve to a
// value; the decode fails on the first error.
func (u *Unarchiver) Decode() (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for i, f := range u.top.Fields {
		key := f.String
		ref := u.top.Values[i]
		if ref.Type != ir.UIDType {
			return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, key)
		}
		val, err := u.decodeObject(ref.UID, map[uint64]bool{})
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, malformed(ref.UID)
		}
		ir.Put(res, key, val)
	}
	return res, nil
}

func takeHeaderKey(root *ir.Node, key string) (*ir.Node, error) {
	val := ir.Take(root, key)
	if val == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingHeaderKey, key)
	}
	return val, nil
}
