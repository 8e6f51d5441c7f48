package construction

import (
	"regexp"
	"strconv"

	"github.com/Comcast/cxg/core"
)

// HypercubeStart is the bitmask at which Hypercube starts each walk.
//
// Starting at 1 rather than 0 means the initial state "0" has no
// outgoing transitions, so the FSA from Hypercube accepts nothing
// (unless there are no cases).  Use HypercubeFrom(cases, 0) for an FSA
// that accepts every ordering of the cases.
var HypercubeStart = 1

// CaseSymbol is the pattern that recognizes the case marker for c in a
// control such as "NOUN<CAS<ACC>>".
func CaseSymbol(c string) string {
	return "CAS<" + regexp.QuoteMeta(c) + ">"
}

// Hypercube is HypercubeFrom(cases, HypercubeStart).
func Hypercube(name string, cases []string) (*core.FSA, error) {
	return HypercubeFrom(name, cases, HypercubeStart)
}

// HypercubeFrom builds an FSA whose states are the subsets of the
// given (distinct) cases.  State "n" is the set of cases whose bits
// are set in n, where case i has bit 1<<i.  State "0" is initial and
// state "2^k-1" is the only final state.
//
// The transitions are those of every walk that starts at the bitmask
// start and reads the cases in some order: after visiting a set of
// cases S, the walk is at start|S, and reading an unvisited case c
// (on CaseSymbol(c)) moves it to start|S|c.  Rather than walking all
// k! orders, each (S, c) pair is visited once, so construction takes
// O(k 2^k) steps.  Transitions leaving a state are added in ascending
// case order.
func HypercubeFrom(name string, cases []string, start int) (*core.FSA, error) {
	k := len(cases)
	last := 1<<uint(k) - 1
	start &= last

	f := core.NewFSA(name)
	for i := 0; i <= last; i++ {
		if err := f.AddState(strconv.Itoa(i), i == 0, i == last); err != nil {
			return nil, err
		}
	}

	type edge struct {
		from, to, c int
	}
	added := make(map[edge]bool)
	for visited := 0; visited <= last; visited++ {
		from := start | visited
		for c := 0; c < k; c++ {
			bit := 1 << uint(c)
			if visited&bit != 0 {
				continue
			}
			e := edge{from, from | bit, c}
			if added[e] {
				continue
			}
			added[e] = true
			if err := f.AddTransition(CaseSymbol(cases[c]), strconv.Itoa(e.from), strconv.Itoa(e.to)); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
