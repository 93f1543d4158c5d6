package http

import "context"

type canonicalPathKey struct{}

// WithCanonicalPath records the canonical output path of the page a request
// was rewritten for.
func WithCanonicalPath(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, canonicalPathKey{}, p)
}

func CanonicalPathFromContext(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(canonicalPathKey{}).(string)
	return p, ok && p != ""
}
