/* Copyright 2026 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package construction matches sequences of machines against
// grammatical patterns and rewrites the sequences that match.
//
// A Construction owns an FSA.  Check feeds the String() of each
// machine's control to the FSA.  If the FSA ends in a final state, Act
// rewrites the sequence.  A sequence that isn't accepted (by the FSA
// or by LastCheck) is a no-match, which is reported as (nil, false,
// nil) rather than as an error.
//
// A Construction's FSA has a cursor, so a Construction shouldn't be
// run by two goroutines at once.
package construction

import (
	"errors"

	"github.com/Comcast/cxg/core"
	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/util"
)

// ErrNoFSA is returned when a construction is made without an FSA.
var ErrNoFSA = errors.New("construction needs an FSA")

// Construction is a pattern over sequences of machines with an action.
type Construction interface {
	Name() string

	// FSA returns the construction's acceptor.
	FSA() *core.FSA

	// Check resets the FSA, feeds it the sequence, and reports
	// whether the FSA ended in a final state.
	Check(seq []*graph.Machine) (bool, error)

	// LastCheck is a final test of an accepted sequence.
	LastCheck(seq []*graph.Machine) bool

	// Act rewrites an accepted sequence.  It calls LastCheck
	// first and reports a no-match if that fails.
	Act(seq []*graph.Machine) ([]*graph.Machine, bool, error)
}

// Run checks the sequence and, if the construction accepts it, acts.
func Run(c Construction, seq []*graph.Machine) ([]*graph.Machine, bool, error) {
	accepted, err := c.Check(seq)
	if err != nil {
		return nil, false, err
	}
	if !accepted {
		util.Logf("%s rejected %v", c.Name(), graph.Refs(seq))
		return nil, false, nil
	}
	util.Logf("%s matched %v", c.Name(), graph.Refs(seq))
	return c.Act(seq)
}

// Base implements everything in Construction except Act.
type Base struct {
	name string
	fsa  *core.FSA
}

// NewBase makes a Base.  The FSA must not be nil.
func NewBase(name string, fsa *core.FSA) (*Base, error) {
	if fsa == nil {
		return nil, ErrNoFSA
	}
	return &Base{
		name: name,
		fsa:  fsa,
	}, nil
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) FSA() *core.FSA {
	return b.fsa
}

// Symbol is what a construction's FSA reads for a machine.
func Symbol(m *graph.Machine) string {
	if m == nil || m.Control() == nil {
		return ""
	}
	return m.Control().String()
}

func (b *Base) Check(seq []*graph.Machine) (bool, error) {
	util.Logf("checking %s construction with %v", b.name, graph.Refs(seq))
	if err := b.fsa.Reset(); err != nil {
		return false, err
	}
	for _, m := range seq {
		if !b.fsa.ReadSymbol(Symbol(m)) {
			break
		}
	}
	return b.fsa.InFinal(), nil
}

// LastCheck accepts everything.
func (b *Base) LastCheck(seq []*graph.Machine) bool {
	return true
}
