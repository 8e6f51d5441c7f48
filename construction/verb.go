package construction

import (
	"errors"
	"strings"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/operators"
	"github.com/Comcast/cxg/util"
)

// DeepCases are the printnames that case discovery recognizes as case
// markers.
var DeepCases = []string{
	"NOM", "ACC", "DAT", "INS", "GEN", "ABL", "LOC", "ALL", "ELA", "ILL",
	"INE", "SUB", "SUE", "DEL", "ADE", "TER", "FOR", "CAU", "ESS", "TRA",
}

// ErrNoCases is returned when a verb has no case markers.
var ErrNoCases = errors.New("no case markers found")

func isDeepCase(name string) bool {
	for _, c := range DeepCases {
		if c == name {
			return true
		}
	}
	return false
}

// Location is where a case marker was found.
type Location struct {
	Owner     *graph.Machine
	Partition int
}

// DiscoverCases finds the case markers in partitions 1..n of m.  The
// cases are returned in the order they were first seen.
func DiscoverCases(m *graph.Machine) ([]string, map[string][]Location) {
	var cases []string
	locs := make(map[string][]Location)
	for i := 1; i < len(m.Partitions()); i++ {
		for _, c := range m.Children(i) {
			pn := c.PrintName()
			if !isDeepCase(pn) {
				continue
			}
			if _, have := locs[pn]; !have {
				cases = append(cases, pn)
			}
			locs[pn] = append(locs[pn], Location{m, i})
		}
	}
	return cases, locs
}

// VerbConstruction links a verb with its arguments.
//
// The verb's case markers (see DiscoverCases) determine an FSA made
// by HypercubeFrom.  The construction reads the arguments (not the
// verb), and Act fills a copy of the verb with them.
type VerbConstruction struct {
	*Base

	Verb      *graph.Machine
	Cases     []string
	Locations map[string][]Location
}

// NewVerbConstruction uses HypercubeStart.
func NewVerbConstruction(name string, verb *graph.Machine) (*VerbConstruction, error) {
	return NewVerbConstructionFrom(name, verb, HypercubeStart)
}

// NewVerbConstructionFrom makes a VerbConstruction whose hypercube
// walks begin at start.  Use 0 for a construction that accepts the
// arguments in any order.
func NewVerbConstructionFrom(name string, verb *graph.Machine, start int) (*VerbConstruction, error) {
	cases, locs := DiscoverCases(verb)
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	f, err := HypercubeFrom(name, cases, start)
	if err != nil {
		return nil, err
	}
	b, err := NewBase(name, f)
	if err != nil {
		return nil, err
	}
	util.Logf("%s discovered cases %v", name, cases)
	return &VerbConstruction{
		Base:      b,
		Verb:      verb,
		Cases:     cases,
		Locations: locs,
	}, nil
}

// CaseOf returns the first of the verb's cases marked in the
// argument's control.
func (c *VerbConstruction) CaseOf(arg *graph.Machine) (string, bool) {
	sym := Symbol(arg)
	for _, cas := range c.Cases {
		if strings.Contains(sym, "CAS<"+cas+">") {
			return cas, true
		}
	}
	return "", false
}

// LastCheck requires each argument to have one of the verb's cases
// and no case to appear twice.
func (c *VerbConstruction) LastCheck(seq []*graph.Machine) bool {
	seen := make(map[string]bool, len(seq))
	for _, arg := range seq {
		cas, ok := c.CaseOf(arg)
		if !ok || seen[cas] {
			return false
		}
		seen[cas] = true
	}
	return true
}

// Act fills each argument into the case slots of a copy of the verb
// and returns that copy.
func (c *VerbConstruction) Act(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	if !c.LastCheck(seq) {
		return nil, false, nil
	}
	wa := operators.NewWorkingArea(c.Verb.Copy())
	for _, arg := range seq {
		cas, _ := c.CaseOf(arg)
		op := &operators.FillArgumentOperator{Case: cas}
		if _, err := op.Act([]*graph.Machine{arg}, wa); err != nil {
			return nil, false, err
		}
	}
	util.Logf("%s produced %s", c.Name(), graph.DescribeIds(wa.Get()))
	return []*graph.Machine{wa.Get()}, true, nil
}

func (c *VerbConstruction) Run(seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	return Run(c, seq)
}
