package unarchive

type unarchiveOpts struct {
	treatAllAsClasses bool
	leaveNullValues   bool
}

type Option func(*unarchiveOpts)

// TreatAllAsClasses suppresses the native dictionary and array
// specializations: every container is decoded as a generic class and keeps
// its "$classes" metadata.
func TreatAllAsClasses(v bool) Option {
	return func(o *unarchiveOpts) { o.treatAllAsClasses = v }
}

// LeaveNullValues leaves "$null" sentinel strings in the output as ordinary
// string leaves. By default they decode to absence and are omitted.
func LeaveNullValues(v bool) Option {
	return func(o *unarchiveOpts) { o.leaveNullValues = v }
}
