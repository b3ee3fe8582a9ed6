package result

import "iter"

// Iterator walks the success channel of one Result once.
type Iterator[V any] struct {
	value V
	more  bool
}

// Iterator returns a fresh iterator: one element for a Success, none for a
// Failure.
func (r Result[V, E]) Iterator() *Iterator[V] {
	if r.isSuccess {
		return &Iterator[V]{value: r.value, more: true}
	}
	return &Iterator[V]{}
}

func (it *Iterator[V]) HasNext() bool {
	return it.more
}

// Next returns the value and true once, then the zero value and false.
func (it *Iterator[V]) Next() (V, bool) {
	if !it.more {
		var zero V
		return zero, false
	}
	it.more = false
	v := it.value
	var zero V
	it.value = zero
	return v, true
}

// All yields the success value, if any. Every range over it starts over.
func (r Result[V, E]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := r.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
