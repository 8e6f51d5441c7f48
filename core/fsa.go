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

package core

import (
	"regexp"
)

// State is a node in an FSA.
type State struct {
	Id      string `json:"id" yaml:"id"`
	Initial bool   `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final   bool   `json:"final,omitempty" yaml:"final,omitempty"`
}

// Transition is a labeled edge.  Pattern is compiled when the
// transition is added.
type Transition struct {
	From    string `json:"from" yaml:"from"`
	Pattern string `json:"pattern" yaml:"pattern"`
	To      string `json:"to" yaml:"to"`

	re *regexp.Regexp
}

// Matches reports whether the transition's pattern matches the symbol.
//
// Transitions that weren't added to an FSA (for example those from
// ParseFSASpec or FSA.Spec) have no compiled pattern, so Pattern is
// treated as a regular expression here.  A bad pattern matches
// nothing.
func (t *Transition) Matches(symbol string) bool {
	if t.re != nil {
		return t.re.MatchString(symbol)
	}
	ok, err := regexp.MatchString(t.Pattern, symbol)
	return err == nil && ok
}

// FSA is a finite-state acceptor with a cursor.
type FSA struct {
	// Name is used in errors and rendering.
	Name string

	states      map[string]*State
	order       []string
	transitions map[string][]*Transition
	initial     string
	hasInitial  bool

	current string
	failed  bool
}

// NewFSA makes an empty FSA.
func NewFSA(name string) *FSA {
	return &FSA{
		Name:        name,
		states:      make(map[string]*State, 8),
		order:       make([]string, 0, 8),
		transitions: make(map[string][]*Transition, 8),
	}
}

// AddState registers a state.
//
// The first initial state also becomes the cursor position.
func (f *FSA) AddState(id string, initial, final bool) error {
	if _, have := f.states[id]; have {
		return &DuplicateState{f.Name, id}
	}
	if initial && f.hasInitial {
		return &SecondInitialState{f.Name, id, f.initial}
	}
	f.states[id] = &State{
		Id:      id,
		Initial: initial,
		Final:   final,
	}
	f.order = append(f.order, id)
	if initial {
		f.initial = id
		f.hasInitial = true
		f.current = id
	}
	return nil
}

// AddTransition registers a transition from one existing state to
// another.  Transitions leaving a state keep their registration order.
func (f *FSA) AddTransition(pattern, from, to string) error {
	for _, id := range []string{from, to} {
		if _, have := f.states[id]; !have {
			return &UnknownState{f.Name, id}
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return &BadPattern{pattern, err}
	}
	f.transitions[from] = append(f.transitions[from], &Transition{
		From:    from,
		Pattern: pattern,
		To:      to,
		re:      re,
	})
	return nil
}

// HasTransition reports whether an identical transition was already
// added.
func (f *FSA) HasTransition(pattern, from, to string) bool {
	for _, t := range f.transitions[from] {
		if t.Pattern == pattern && t.To == to {
			return true
		}
	}
	return false
}

// Reset moves the cursor to the initial state and forgets any failure.
func (f *FSA) Reset() error {
	if !f.hasInitial {
		return &NoInitialState{f.Name}
	}
	f.current = f.initial
	f.failed = false
	return nil
}

// ReadSymbol advances the cursor along the first matching transition
// leaving the current state.
//
// Returns false if no transition matched (or if an earlier symbol in
// this attempt failed).  In that case the cursor doesn't move.
func (f *FSA) ReadSymbol(symbol string) bool {
	if f.failed {
		return false
	}
	for _, t := range f.transitions[f.current] {
		if t.Matches(symbol) {
			f.current = t.To
			return true
		}
	}
	f.failed = true
	return false
}

// InFinal reports whether the cursor is at a final state and no
// symbol has failed since the last Reset.
func (f *FSA) InFinal() bool {
	if f.failed {
		return false
	}
	s, have := f.states[f.current]
	return have && s.Final
}

// Failed reports whether a symbol failed to match since the last
// Reset.
func (f *FSA) Failed() bool {
	return f.failed
}

// Current returns the id of the state at the cursor.
func (f *FSA) Current() string {
	return f.current
}

// Initial returns the id of the initial state (or "").  The empty
// string is also a legal state id, so use HasInitial to tell the two
// apart.
func (f *FSA) Initial() string {
	return f.initial
}

// HasInitial reports whether an initial state has been added.
func (f *FSA) HasInitial() bool {
	return f.hasInitial
}

// State returns the state with the given id.
func (f *FSA) State(id string) (*State, bool) {
	s, have := f.states[id]
	return s, have
}

// States returns the states in registration order.
func (f *FSA) States() []*State {
	acc := make([]*State, len(f.order))
	for i, id := range f.order {
		acc[i] = f.states[id]
	}
	return acc
}

// Finals returns the ids of the final states in registration order.
func (f *FSA) Finals() []string {
	acc := make([]string, 0, 1)
	for _, id := range f.order {
		if f.states[id].Final {
			acc = append(acc, id)
		}
	}
	return acc
}

// Transitions returns the transitions leaving the given state in
// registration order.
func (f *FSA) Transitions(from string) []*Transition {
	return f.transitions[from]
}

// AllTransitions returns every transition, grouped by source state in
// state registration order.
func (f *FSA) AllTransitions() []*Transition {
	acc := make([]*Transition, 0, len(f.order))
	for _, id := range f.order {
		acc = append(acc, f.transitions[id]...)
	}
	return acc
}

// Accepts resets the FSA, reads all the symbols, and reports whether
// the cursor ended at a final state.
func (f *FSA) Accepts(symbols []string) (bool, error) {
	if err := f.Reset(); err != nil {
		return false, err
	}
	for _, s := range symbols {
		if !f.ReadSymbol(s) {
			return false, nil
		}
	}
	return f.InFinal(), nil
}

// Copy makes an FSA with the same states and transitions but its own
// cursor, which is at the initial state.
func (f *FSA) Copy() *FSA {
	acc := &FSA{
		Name:        f.Name,
		states:      make(map[string]*State, len(f.states)),
		order:       make([]string, len(f.order)),
		transitions: make(map[string][]*Transition, len(f.transitions)),
		initial:     f.initial,
		hasInitial:  f.hasInitial,
		current:     f.initial,
	}
	copy(acc.order, f.order)
	for id, s := range f.states {
		c := *s
		acc.states[id] = &c
	}
	for id, ts := range f.transitions {
		acc.transitions[id] = append([]*Transition(nil), ts...)
	}
	return acc
}
