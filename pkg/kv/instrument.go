package kv

import "context"

// Recorder receives store traffic counts. Implemented by pkg/metrics.
type Recorder interface {
	IncRead(collection string)
	IncWrite(collection string)
}

type measuredStore struct {
	Store
	rec Recorder
}

// WithMetrics wraps a store so every snapshot read and write is counted.
func WithMetrics(s Store, rec Recorder) Store {
	if rec == nil {
		return s
	}
	return &measuredStore{Store: s, rec: rec}
}

func (m *measuredStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	m.rec.IncRead(collection)
	return m.Store.Get(ctx, collection)
}

func (m *measuredStore) Set(ctx context.Context, collection string, value []byte) error {
	m.rec.IncWrite(collection)
	return m.Store.Set(ctx, collection, value)
}

func (m *measuredStore) Delete(ctx context.Context, collection string) error {
	m.rec.IncWrite(collection)
	return m.Store.Delete(ctx, collection)
}
