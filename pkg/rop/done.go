package rop

import "fmt"

// Done signals a completed operation without a value, e.g. Result[Done, E].
type Done struct{}

// DoneValue is the only value Done has.
var DoneValue = Done{}

func (Done) String() string {
	return "Done"
}

func (Done) MarshalJSON() ([]byte, error) {
	return []byte(`"Done"`), nil
}

func (d *Done) UnmarshalJSON(data []byte) error {
	if string(data) != `"Done"` {
		return fmt.Errorf("rop: cannot decode %s as Done", data)
	}
	return nil
}
