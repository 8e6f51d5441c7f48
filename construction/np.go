package construction

import (
	"github.com/Comcast/cxg/core"
	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/operators"
)

// DetMarker is appended to the part of speech of a noun that
// TheConstruction has matched.
var DetMarker = "<DET>"

func chain(name string, finals []bool, ts ...[3]string) (*core.FSA, error) {
	f := core.NewFSA(name)
	for i, final := range finals {
		if err := f.AddState(stateId(i), i == 0, final); err != nil {
			return nil, err
		}
	}
	for _, t := range ts {
		if err := f.AddTransition(t[0], t[1], t[2]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func stateId(i int) string {
	return string(rune('0' + i))
}

// TheConstruction is NOUN<DET> -> the NOUN.
//
// The FSA is 0 -^the$-> 1 -^NOUN.*-> 2 with 2 final.
type TheConstruction struct {
	*Base
}

func NewTheConstruction() (*TheConstruction, error) {
	f, err := chain("TheConstruction", []bool{false, false, true},
		[3]string{"^the$", "0", "1"},
		[3]string{"^NOUN.*", "1", "2"})
	if err != nil {
		return nil, err
	}
	b, err := NewBase("TheConstruction", f)
	if err != nil {
		return nil, err
	}
	return &TheConstruction{b}, nil
}

// Act appends DetMarker to the noun's part of speech and returns just
// the noun.
func (c *TheConstruction) Act(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	if !c.LastCheck(seq) {
		return nil, false, nil
	}
	if len(seq) != 2 {
		return nil, false, &operators.ArityError{Operator: c.Name(), Want: 2, Got: len(seq)}
	}
	noun := seq[1]
	switch vv := noun.Control().(type) {
	case *graph.PosControl:
		vv.Pos += DetMarker
	case *graph.KRPosControl:
		vv.Pos += DetMarker
	default:
		return nil, false, &operators.ControlTypeError{Operator: c.Name(), Want: "PosControl", Got: vv}
	}
	return []*graph.Machine{noun}, true, nil
}

func (c *TheConstruction) Run(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	return Run(c, seq)
}

// DummyNPConstruction is NP -> ADJ* NOUN.
//
// The FSA is 0 -^ADJ.*-> 0, 0 -^NOUN.*-> 1 with 1 final.
type DummyNPConstruction struct {
	*Base
}

func NewDummyNPConstruction() (*DummyNPConstruction, error) {
	f, err := chain("DummyNPConstruction", []bool{false, true},
		[3]string{"^ADJ.*", "0", "0"},
		[3]string{"^NOUN.*", "0", "1"})
	if err != nil {
		return nil, err
	}
	b, err := NewBase("DummyNPConstruction", f)
	if err != nil {
		return nil, err
	}
	return &DummyNPConstruction{b}, nil
}

// Act appends the adjectives, in order, to partition 1 of the noun
// (the last machine) and returns just the noun.
func (c *DummyNPConstruction) Act(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	if !c.LastCheck(seq) {
		return nil, false, nil
	}
	if len(seq) == 0 {
		return nil, false, &operators.ArityError{Operator: c.Name(), Want: 1, Got: 0}
	}
	last := len(seq) - 1
	for i := 0; i < last; i++ {
		if _, err := operators.NewAppendOperator(last, i).Act(seq, nil); err != nil {
			return nil, false, err
		}
	}
	return []*graph.Machine{seq[last]}, true, nil
}

func (c *DummyNPConstruction) Run(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	return Run(c, seq)
}
