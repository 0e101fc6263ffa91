package unarchive

import "github.com/nskeyed-format/go-nskeyed/ir"

// deref returns the object table entry for a non-zero reference. References
// outside the table are fatal corruption.
func (u *Unarchiver) deref(ref uint64) (*ir.Node, error) {
	if ref >= uint64(len(u.objects)) {
		return nil, dangling(ref)
	}
	return u.objects[ref], nil
}

// isContainer reports whether a table entry is interpretable as a class
// instance: an object carrying a "$class" field that is itself a reference.
// Anything else is an ordinary leaf copied verbatim.
func isContainer(y *ir.Node) bool {
	if y.Type != ir.ObjectType {
		return false
	}
	cls := ir.Get(y, classKey)
	return cls != nil && cls.Type == ir.UIDType
}
