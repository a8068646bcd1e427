package repository

// Registry is an insertion-ordered keyed store. Replacing the value of an
// existing key keeps the key's original position.
//
// Registry is not safe for concurrent use.
type Registry[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		values: make(map[K]V),
	}
}

// Put inserts or replaces the value stored under key.
// It reports whether an existing value was replaced.
func (r *Registry[K, V]) Put(key K, value V) bool {
	_, exists := r.values[key]
	if !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return exists
}

// Get retrieves the value stored under key.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of stored values.
func (r *Registry[K, V]) Len() int {
	return len(r.keys)
}

// Values returns a new slice holding every value in insertion order.
func (r *Registry[K, V]) Values() []V {
	values := make([]V, 0, len(r.keys))
	for _, k := range r.keys {
		values = append(values, r.values[k])
	}
	return values
}

// Each calls fn for every entry in insertion order until fn returns false.
func (r *Registry[K, V]) Each(fn func(key K, value V) bool) {
	for _, k := range r.keys {
		if !fn(k, r.values[k]) {
			return
		}
	}
}
