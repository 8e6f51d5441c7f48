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

// Package lexicon provides word and concept definitions.
//
// A lexicon maps printnames to static entries (machines that define
// the word) and can expand a machine by grafting a copy of its
// definition's argument partitions onto it.
package lexicon

import (
	"sync"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/util"
)

// Lexicon is what the rest of this module needs from a lexicon.
type Lexicon interface {
	// Static returns the definition for the given name.
	//
	// Callers shouldn't modify the returned machine.
	Static(name string) (*graph.Machine, bool)

	// Each calls f for every entry until f returns an error.
	Each(f func(name string, def *graph.Machine) error) error

	// Expand grafts the definition of m onto m.
	Expand(m *graph.Machine) error
}

// UnknownWord occurs when a name has no entry.
type UnknownWord struct {
	Name string
}

func (e *UnknownWord) Error() string {
	return `no lexicon entry for "` + e.Name + `"`
}

// Expand grafts a deep copy of the argument partitions (1..n) of the
// definition of m onto m.  Partition 0 isn't touched.
//
// The definition itself is never shared with m, so later in-place
// rewrites of m (see operators.FillArgumentOperator) don't change the
// lexicon.
func Expand(l Lexicon, m *graph.Machine) error {
	def, have := l.Static(m.PrintName())
	if !have {
		return &UnknownWord{m.PrintName()}
	}
	def = def.Copy()
	for i, p := range def.Partitions() {
		if i == 0 {
			continue
		}
		for _, x := range p {
			if err := m.Append(x, i); err != nil {
				return err
			}
		}
	}
	util.Logf("expanded %s", graph.DescribeIds(m))
	return nil
}

// Memory is an in-memory Lexicon.
type Memory struct {
	sync.RWMutex

	entries map[string]*graph.Machine
	order   []string
}

// NewMemory makes an empty lexicon.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*graph.Machine, 32),
		order:   make([]string, 0, 32),
	}
}

// Add adds or replaces the entry for def's printname.
func (l *Memory) Add(defs ...*graph.Machine) {
	l.Lock()
	for _, def := range defs {
		name := def.PrintName()
		if _, have := l.entries[name]; !have {
			l.order = append(l.order, name)
		}
		l.entries[name] = def
	}
	l.Unlock()
}

// Len returns the number of entries.
func (l *Memory) Len() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.entries)
}

func (l *Memory) Static(name string) (*graph.Machine, bool) {
	l.RLock()
	def, have := l.entries[name]
	l.RUnlock()
	return def, have
}

// Each visits entries in the order they were first added.
//
// f can call back into the lexicon.
func (l *Memory) Each(f func(string, *graph.Machine) error) error {
	l.RLock()
	names := make([]string, len(l.order))
	copy(names, l.order)
	defs := make([]*graph.Machine, len(names))
	for i, name := range names {
		defs[i] = l.entries[name]
	}
	l.RUnlock()

	for i, name := range names {
		if err := f(name, defs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *Memory) Expand(m *graph.Machine) error {
	return Expand(l, m)
}
