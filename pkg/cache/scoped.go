package cache

// ScopedKeyer prefixes every key of an inner Keyer. The HTTP API uses it to
// keep its entries apart from the CLI's when both share one backend:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GeometryKey implements [Keyer].
func (k *ScopedKeyer) GeometryKey(dataHash string, opts GeometryKeyOpts) string {
	return k.prefix + k.inner.GeometryKey(dataHash, opts)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(geometryHash, opts)
}
