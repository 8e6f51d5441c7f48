package construction

import (
	"github.com/Comcast/cxg/core"
	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/operators"
	"github.com/Comcast/cxg/util"
)

// AppendConstruction folds an accepted sequence into one machine by
// repeatedly appending one machine to another.
type AppendConstruction struct {
	*Base

	// ActFromLeft says to fold the sequence left to right.
	// Otherwise the fold goes right to left.
	ActFromLeft bool

	// AppendToLeft says that, of each pair of machines, the other
	// is appended to the left one.  Otherwise the left one is
	// appended to the other.
	AppendToLeft bool

	// Part is the partition that receives appended machines.
	Part int
}

// NewAppendConstruction makes an AppendConstruction that appends into
// partition 1.
func NewAppendConstruction(name string, f *core.FSA, actFromLeft, appendToLeft bool) (*AppendConstruction, error) {
	b, err := NewBase(name, f)
	if err != nil {
		return nil, err
	}
	return &AppendConstruction{
		Base:         b,
		ActFromLeft:  actFromLeft,
		AppendToLeft: appendToLeft,
		Part:         1,
	}, nil
}

// Act returns the single machine that the fold ends with.
func (c *AppendConstruction) Act(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	if !c.LastCheck(seq) {
		return nil, false, nil
	}
	if len(seq) == 0 {
		return nil, false, &operators.ArityError{Operator: c.Name(), Want: 1, Got: 0}
	}

	x, y := 1, 0
	if c.AppendToLeft {
		x, y = 0, 1
	}
	op := &operators.AppendOperator{X: x, Y: y, Part: c.Part}

	n := len(seq)
	var acc *graph.Machine
	if c.ActFromLeft {
		acc = seq[0]
		for i := 1; i < n; i++ {
			out, err := op.Act([]*graph.Machine{acc, seq[i]}, nil)
			if err != nil {
				return nil, false, err
			}
			acc = out[0]
		}
	} else {
		acc = seq[n-1]
		for i := n - 2; 0 <= i; i-- {
			out, err := op.Act([]*graph.Machine{seq[i], acc}, nil)
			if err != nil {
				return nil, false, err
			}
			acc = out[0]
		}
	}
	util.Logf("%s produced %s", c.Name(), graph.DescribeIds(acc))
	return []*graph.Machine{acc}, true, nil
}

func (c *AppendConstruction) Run(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	return Run(c, seq)
}
