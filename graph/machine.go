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

// Package graph provides the semantic-graph nodes ("machines") that
// constructions match and operators rewrite.
//
// A Machine has a printname, a Control (its role-tag) and an ordered
// list of partitions.  Partition 0 is the machine's own slot;
// partitions 1..n hold arguments.  A partition entry is either a
// *Machine or a literal string.
package graph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Machine is a node in a semantic graph.
type Machine struct {
	// Id is a unique identifier assigned at creation.
	Id string `json:"id"`

	name       string
	partitions [][]interface{}
	control    Control
}

// NewMachine makes a machine with the given printname, arity + 1
// (initially empty) partitions, and control.
func NewMachine(name string, arity int, c Control) *Machine {
	if arity < 0 {
		arity = 0
	}
	return &Machine{
		Id:         uuid.NewString(),
		name:       name,
		partitions: make([][]interface{}, arity+1),
		control:    c,
	}
}

// NewPos is a convenience constructor for a word with a PosControl.
func NewPos(name, pos string) *Machine {
	return NewMachine(name, 1, &PosControl{Pos: pos})
}

// NewWords builds a sequence of words from "name/POS" specs.  A spec
// without a slash uses the name as its POS too, so "the" is the/the.
//
//	NewWords("kek/ADJ", "kockat/NOUN<CAS<ACC>>")
func NewWords(specs ...string) []*Machine {
	acc := make([]*Machine, len(specs))
	for i, s := range specs {
		name, pos := s, s
		if j := strings.Index(s, "/"); 0 <= j {
			name, pos = s[:j], s[j+1:]
		}
		acc[i] = NewPos(name, pos)
	}
	return acc
}

// NewConcept makes a concept machine with the given arity.
func NewConcept(name string, arity int) *Machine {
	return NewMachine(name, arity, &ConceptControl{})
}

// PrintName returns the display name.
func (m *Machine) PrintName() string {
	if m == nil {
		return ""
	}
	return m.name
}

// String returns the printname.  Use Describe to see partitions.
func (m *Machine) String() string {
	return m.PrintName()
}

// ShortId is the first eight characters of the machine's Id.
func (m *Machine) ShortId() string {
	if m == nil {
		return ""
	}
	if len(m.Id) <= 8 {
		return m.Id
	}
	return m.Id[:8]
}

// Ref names the machine in logs: "kockat#1b4e28ba".  Unlike the
// printname, it tells apart machines that share a name, such as a
// definition and its copies.
func (m *Machine) Ref() string {
	if m == nil {
		return "nil"
	}
	return m.name + "#" + m.ShortId()
}

// Control returns the machine's role-tag, which might be nil.
func (m *Machine) Control() Control {
	return m.control
}

// SetControl replaces the role-tag.
func (m *Machine) SetControl(c Control) {
	m.control = c
}

// Arity is the number of argument partitions (not counting partition
// 0).
func (m *Machine) Arity() int {
	return len(m.partitions) - 1
}

// Partitions returns the partitions themselves (not copies).
func (m *Machine) Partitions() [][]interface{} {
	return m.partitions
}

// Partition returns the entries of partition i, or nil if there is no
// such partition.
func (m *Machine) Partition(i int) []interface{} {
	if i < 0 || len(m.partitions) <= i {
		return nil
	}
	return m.partitions[i]
}

// Children returns the machines (skipping literals) in partition i.
func (m *Machine) Children(i int) []*Machine {
	p := m.Partition(i)
	acc := make([]*Machine, 0, len(p))
	for _, x := range p {
		if c, is := x.(*Machine); is {
			acc = append(acc, c)
		}
	}
	return acc
}

// Append adds x to the end of partition part, growing the partition
// list if needed.
//
// x should be a *Machine or a string.
func (m *Machine) Append(x interface{}, part int) error {
	if part < 0 {
		return &BadPartition{m, part}
	}
	switch x.(type) {
	case *Machine, string:
	default:
		return fmt.Errorf("can't append a %T to machine %q", x, m.name)
	}
	for len(m.partitions) <= part {
		m.partitions = append(m.partitions, nil)
	}
	m.partitions[part] = append(m.partitions[part], x)
	return nil
}

// Replace sets entry idx of partition part to x.
func (m *Machine) Replace(part, idx int, x interface{}) error {
	p := m.Partition(part)
	if idx < 0 || len(p) <= idx {
		return &BadPartition{m, part}
	}
	p[idx] = x
	return nil
}

// Copy makes a deep copy of the machine and every machine reachable
// through its partitions.  Shared substructure (including cycles) is
// preserved.  Copies get new ids.  Controls are copied when they are
// one of this package's types.
func (m *Machine) Copy() *Machine {
	return m.copy(make(map[*Machine]*Machine))
}

func (m *Machine) copy(done map[*Machine]*Machine) *Machine {
	if m == nil {
		return nil
	}
	if c, have := done[m]; have {
		return c
	}
	c := &Machine{
		Id:         uuid.NewString(),
		name:       m.name,
		partitions: make([][]interface{}, len(m.partitions)),
		control:    CopyControl(m.control),
	}
	done[m] = c
	for i, p := range m.partitions {
		if p == nil {
			continue
		}
		cp := make([]interface{}, len(p))
		for j, x := range p {
			if sub, is := x.(*Machine); is {
				cp[j] = sub.copy(done)
			} else {
				cp[j] = x
			}
		}
		c.partitions[i] = cp
	}
	return c
}

// Describe renders the machine and its argument partitions
// recursively, like "kockat/NOUN[1:kek/ADJ]".
//
// Cycles are cut with "...".
func Describe(m *Machine) string {
	var b strings.Builder
	describe(&b, m, make(map[*Machine]bool), false)
	return b.String()
}

// Refs returns the Ref of each machine.
func Refs(ms []*Machine) []string {
	acc := make([]string, len(ms))
	for i, m := range ms {
		acc[i] = m.Ref()
	}
	return acc
}

// DescribeIds is Describe with each machine named by its Ref, so
// "give#9f1c02aa/VERB[1:john#03b7e4d1/NOUN]".
func DescribeIds(m *Machine) string {
	var b strings.Builder
	describe(&b, m, make(map[*Machine]bool), true)
	return b.String()
}

func describe(b *strings.Builder, m *Machine, seen map[*Machine]bool, ids bool) {
	if m == nil {
		b.WriteString("nil")
		return
	}
	if seen[m] {
		b.WriteString("...")
		return
	}
	seen[m] = true
	defer delete(seen, m)

	if ids {
		b.WriteString(m.Ref())
	} else {
		b.WriteString(m.name)
	}
	if m.control != nil {
		b.WriteString("/" + m.control.String())
	}
	first := true
	for i, p := range m.partitions {
		if i == 0 || len(p) == 0 {
			continue
		}
		if first {
			b.WriteString("[")
			first = false
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%d:", i)
		for j, x := range p {
			if 0 < j {
				b.WriteString(",")
			}
			switch vv := x.(type) {
			case *Machine:
				describe(b, vv, seen, ids)
			default:
				fmt.Fprintf(b, "%q", vv)
			}
		}
	}
	if !first {
		b.WriteString("]")
	}
}

// BadPartition occurs when a partition index (or an index within a
// partition) is out of range.
type BadPartition struct {
	Machine *Machine
	Index   int
}

func (e *BadPartition) Error() string {
	return fmt.Sprintf("bad partition %d for machine %q", e.Index, e.Machine.PrintName())
}
