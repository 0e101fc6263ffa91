package parse

type parseOpts struct {
	sortKeys bool
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{sortKeys: true}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// SortKeys controls whether dictionary keys are normalized to sorted order.
// On by default; turning it off leaves keys in map iteration order, which is
// not deterministic across runs.
func SortKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.sortKeys = v }
}
