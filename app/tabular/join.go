package tabular

// Index resolves records of a secondary table by a natural key. It is built
// once per table per request; build order preserves row order, so FindOne
// returns the same record a linear first-match scan would.
type Index[T any] struct {
	buckets map[string][]T
}

// NewIndex builds an index over records keyed by the given accessor.
// Duplicate keys are kept, in insertion order.
func NewIndex[T any](records []T, key func(T) string) *Index[T] {
	ix := &Index[T]{buckets: make(map[string][]T, len(records))}
	for _, rec := range records {
		k := key(rec)
		ix.buckets[k] = append(ix.buckets[k], rec)
	}
	return ix
}

// FindOne returns the first record in row order whose key equals value.
func (ix *Index[T]) FindOne(value string) (T, bool) {
	if recs := ix.buckets[value]; len(recs) > 0 {
		return recs[0], true
	}
	var zero T
	return zero, false
}

// FindAll returns every record whose key equals value, in row order.
// The result may be empty.
func (ix *Index[T]) FindAll(value string) []T {
	return ix.buckets[value]
}
