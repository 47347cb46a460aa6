package cache

// ScopedKeyer wraps a Keyer with a prefix so that several consumers can
// share one backend without colliding, e.g. the CLI and the HTTP server on
// the same Redis instance:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "http:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(modelHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(modelHash, opts)
}

// TreeKey generates a prefixed tree key.
func (k *ScopedKeyer) TreeKey(modelHash string, opts TreeKeyOpts) string {
	return k.prefix + k.inner.TreeKey(modelHash, opts)
}
