package operators

import (
	"fmt"

	"github.com/Comcast/cxg/graph"
)

// ControlTypeError occurs when an operator is given a machine whose
// control isn't the kind it works on.
type ControlTypeError struct {
	Operator string
	Want     string
	Got      graph.Control
}

func (e *ControlTypeError) Error() string {
	return fmt.Sprintf("%s needs a %s control, not %T", e.Operator, e.Want, e.Got)
}

// ArityError occurs when an operator is given the wrong number of
// machines.
type ArityError struct {
	Operator string
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s takes %d machine(s), not %d", e.Operator, e.Want, e.Got)
}

// IndexError occurs when an operator's index is outside its input
// sequence.
type IndexError struct {
	Operator string
	Index    int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range for sequence of length %d", e.Operator, e.Index, e.Len)
}
