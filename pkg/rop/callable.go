package rop

// Supplier produces a value and may fail. It bridges ordinary (V, error)
// returning code into result.Of.
type Supplier[V any] func() (V, error)

// Get calls the supplier.
func (s Supplier[V]) Get() (V, error) {
	return s()
}

// Action performs side effects and may fail. It bridges ordinary error
// returning code into completable.Of.
type Action func() error

// Run calls the action.
func (a Action) Run() error {
	return a()
}
