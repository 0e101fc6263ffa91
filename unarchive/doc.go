// Package unarchive decodes NSKeyedArchiver property lists into plain value
// trees.
//
// # Overview
//
// NSKeyedArchiver stores an object graph in a flat, index-addressed table
// ("$objects") and represents cross-references, class identity, and container
// contents as integer handles (UIDs) into that table. This package resolves
// those references recursively and strips the archiver bookkeeping, turning
// the flat table into a normal nested tree:
//
//	u, err := unarchive.File("archive.plist")
//	if err != nil { ... }
//	decoded, err := u.Decode()
//
// Containers whose class resolves to NSArray or NSDictionary (or their
// mutable variants) become native arrays; dictionaries become arrays of
// {key, value} records because decoded keys are not restricted to strings.
// Every other class decodes as a generic object retaining its "$classes"
// lineage.
//
// # Absence
//
// UID 0 and the "$null" sentinel decode to absence, which is distinct from a
// present null: absent array elements are dropped, absent object fields are
// omitted, and absent dictionary entries or root entries are errors. The
// LeaveNullValues option disables the sentinel handling; TreatAllAsClasses
// disables the native container specializations.
//
// # Errors
//
// All errors are terminal for the decode pass and wrap one of the package
// sentinel errors (ErrDanglingReference, ErrMalformedObject, ...), carrying
// the offending key or table index. Cyclic object graphs are detected and
// reported as ErrCyclicReference rather than exhausting the stack.
package unarchive
