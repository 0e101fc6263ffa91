package unarchive

import (
	"fmt"

	"github.com/nskeyed-format/go-nskeyed/debug"
	"github.com/nskeyed-format/go-nskeyed/ir"
)

// decodeObject resolves one reference into a value, or into nil for absence.
// The inProgress set holds references currently being resolved along this
// path; re-entering one means the archive's object graph is cyclic.
func (u *Unarchiver) decodeObject(ref uint64, inProgress map[uint64]bool) (*ir.Node, error) {
	if ref == 0 {
		return nil, nil
	}
	obj, err := u.deref(ref)
	if err != nil {
		return nil, err
	}
	if obj.Type == ir.StringType && obj.String == nullObjectName && !u.opts.leaveNullValues {
		return nil, nil
	}
	if !isContainer(obj) {
		if debug.Decode() {
			debug.Logf("decodeObject: %d is a %s leaf", ref, obj.Type)
		}
		return obj.Clone(), nil
	}
	if inProgress[ref] {
		return nil, fmt.Errorf("%w (%d): object references itself", ErrCyclicReference, ref)
	}
	inProgress[ref] = true
	defer delete(inProgress, ref)

	classRef := ir.Get(obj, classKey)
	if classRef.Type != ir.UIDType {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClassReference, classRef.Type)
	}
	names, err := u.classNames(classRef.UID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		// unresolvable container; callers decide whether that is fatal
		return nil, nil
	}
	kind := classify(names[0], u.opts.treatAllAsClasses)
	if debug.Classes() {
		debug.Logf("decodeObject: %d is %s (kind %d)", ref, names[0], kind)
	}
	switch kind {
	case dictKind:
		return u.decodeDict(ref, obj, inProgress)
	case arrayKind:
		return u.decodeArray(ref, obj, inProgress)
	default:
		return u.decodeCustomClass(ref, obj, inProgress)
	}
}

// decodeArray decodes an NSArray/NSMutableArray container. Elements that
// resolve to absence are dropped; surviving elements keep their relative
// order.
func (u *Unarchiver) decodeArray(ref uint64, obj *ir.Node, inProgress map[uint64]bool) (*ir.Node, error) {
	rawObjects := ir.Get(obj, nsObjectsKey)
	if rawObjects == nil || rawObjects.Type != ir.ArrayType {
		return nil, malformed(ref)
	}
	values := make([]*ir.Node, 0, len(rawObjects.Values))
	for _, el := range rawObjects.Values {
		if el.Type != ir.UIDType {
			return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, nsObjectsKey)
		}
		val, err := u.decodeObject(el.UID, inProgress)
		if err != nil {
			return nil, err
		}
		if val != nil {
			values = append(values, val)
		}
	}
	return ir.FromSlice(values), nil
}

// decodeDict decodes an NSDictionary/NSMutableDictionary container. Decoded
// keys may be numbers, strings or nested objects, so the result is an array
// of {key, value} records rather than a native mapping. A key or value slot
// resolving to absence is an error here: dictionary entries may not silently
// vanish.
func (u *Unarchiver) decodeDict(ref uint64, obj *ir.Node, inProgress map[uint64]bool) (*ir.Node, error) {
	rawKeys := ir.Get(obj, nsKeysKey)
	if rawKeys == nil || rawKeys.Type != ir.ArrayType {
		return nil, malformed(ref)
	}
	rawValues := ir.Get(obj, nsObjectsKey)
	if rawValues == nil || rawValues.Type != ir.ArrayType {
		return nil, malformed(ref)
	}
	if len(rawKeys.Values) != len(rawValues.Values) {
		return nil, malformed(ref)
	}

	records := make([]*ir.Node, 0, len(rawKeys.Values))
	for i, rawKey := range rawKeys.Values {
		rawVal := rawValues.Values[i]
		if rawKey.Type != ir.UIDType {
			return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, nsKeysKey)
		}
		if rawVal.Type != ir.UIDType {
			return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, nsObjectsKey)
		}
		key, err := u.decodeObject(rawKey.UID, inProgress)
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, malformed(ref)
		}
		val, err := u.decodeObject(rawVal.UID, inProgress)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, malformed(ref)
		}
		records = append(records, ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("key"), Val: key},
			{Key: ir.FromString("value"), Val: val},
		}))
	}
	return ir.FromSlice(records), nil
}

// decodeCustomClass decodes a generic class instance field by field. The
// "$class" reference is resolved and surfaced as "$classes" so consumers get
// the full lineage. Fields resolving to absence are omitted rather than
// emitted as nulls.
func (u *Unarchiver) decodeCustomClass(ref uint64, obj *ir.Node, inProgress map[uint64]bool) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for i, f := range obj.Fields {
		key := f.String
		rawVal := obj.Values[i]
		if key == classKey {
			if rawVal.Type != ir.UIDType {
				return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, key)
			}
			meta, err := u.decodeObject(rawVal.UID, inProgress)
			if err != nil {
				return nil, err
			}
			if meta == nil {
				return nil, malformed(ref)
			}
			classes := ir.Get(meta, classesKey)
			if classes == nil {
				return nil, malformed(ref)
			}
			ir.Put(res, classesKey, classes)
			continue
		}

		var val *ir.Node
		switch rawVal.Type {
		case ir.UIDType:
			var err error
			val, err = u.decodeObject(rawVal.UID, inProgress)
			if err != nil {
				return nil, err
			}
		case ir.ArrayType:
			values := make([]*ir.Node, 0, len(rawVal.Values))
			for _, el := range rawVal.Values {
				if el.Type != ir.UIDType {
					return nil, fmt.Errorf("%w for key %s", ErrExpectedReference, key)
				}
				// malformed elements are skipped, not fatal
				ev, err := u.decodeObject(el.UID, inProgress)
				if err != nil || ev == nil {
					continue
				}
				values = append(values, ev)
			}
			val = ir.FromSlice(values)
		default:
			val = rawVal.Clone()
		}

		if val == nil {
			// absent field: omitted entirely, not encoded as null
			continue
		}
		ir.Put(res, key, val)
	}
	return res, nil
}
