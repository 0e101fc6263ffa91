package unarchive

import "github.com/nskeyed-format/go-nskeyed/ir"

// classNames resolves a class reference to the ordered ancestor chain,
// most-derived class first. The referenced entry must be an object whose
// "$classes" field is an array of strings; any deviation is a malformed
// object tagged with the offending index.
func (u *Unarchiver) classNames(ref uint64) ([]string, error) {
	if ref >= uint64(len(u.objects)) {
		return nil, malformed(ref)
	}
	obj := u.objects[ref]
	if obj.Type != ir.ObjectType {
		return nil, malformed(ref)
	}
	classes := ir.Get(obj, classesKey)
	if classes == nil || classes.Type != ir.ArrayType {
		return nil, malformed(ref)
	}
	names := make([]string, 0, len(classes.Values))
	for _, name := range classes.Values {
		if name.Type != ir.StringType {
			return nil, malformed(ref)
		}
		names = append(names, name.String)
	}
	return names, nil
}

type containerKind int

const (
	classKind containerKind = iota
	arrayKind
	dictKind
)

// classify decides how a container decodes. Only the most-derived class name
// is consulted; ancestor names are carried in the output but never drive
// dispatch.
func classify(name string, treatAllAsClasses bool) containerKind {
	if treatAllAsClasses {
		return classKind
	}
	switch name {
	case "NSDictionary", "NSMutableDictionary":
		return dictKind
	case "NSArray", "NSMutableArray":
		return arrayKind
	default:
		return classKind
	}
}
