package audit

import "context"

type metaKey struct{}

// Meta carries request-scoped fields copied onto every event.
type Meta struct {
	RequestID string
	IP        string
}

// WithMeta returns ctx carrying m.
func WithMeta(ctx context.Context, m Meta) context.Context {
	return context.WithValue(ctx, metaKey{}, m)
}

// MetaFrom extracts request metadata, if any.
func MetaFrom(ctx context.Context) Meta {
	m, _ := ctx.Value(metaKey{}).(Meta)
	return m
}

// Stamp copies request metadata from ctx onto e.
func Stamp(ctx context.Context, e Event) Event {
	m := MetaFrom(ctx)
	e.RequestID = m.RequestID
	e.IP = m.IP
	return e
}
