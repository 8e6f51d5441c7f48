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

// Package operators provides the rewrite primitives that construction
// actions are made of.
//
// An Operator's indices and keys are fixed when it is made.  Act takes
// a sequence of machines and returns a new sequence.  Operators modify
// the machines they are given in place; the input slice itself is not
// modified.
//
// Some operators (FillArgumentOperator, ExpandOperator) also use a
// WorkingArea, which the caller owns and passes down explicitly.
package operators

import (
	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/lexicon"
	"github.com/Comcast/cxg/util"
)

// Operator is a rewrite primitive.
type Operator interface {
	Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error)
}

// WorkingArea is a single mutable slot used to hand a machine between
// an expanding machine and machines nested inside it.
//
// The zero value is an empty working area.
type WorkingArea struct {
	m *graph.Machine
}

// NewWorkingArea makes a working area holding m, which can be nil.
func NewWorkingArea(m *graph.Machine) *WorkingArea {
	return &WorkingArea{m}
}

// Get returns the machine in the slot, or nil.
func (wa *WorkingArea) Get() *graph.Machine {
	if wa == nil {
		return nil
	}
	return wa.m
}

// Set puts m in the slot.
func (wa *WorkingArea) Set(m *graph.Machine) {
	wa.m = m
}

func at(op string, seq []*graph.Machine, i int) (*graph.Machine, error) {
	if i < 0 || len(seq) <= i {
		return nil, &IndexError{Operator: op, Index: i, Len: len(seq)}
	}
	return seq[i], nil
}

func krControl(op string, m *graph.Machine) (*graph.KRPosControl, error) {
	c, is := m.Control().(*graph.KRPosControl)
	if !is {
		return nil, &ControlTypeError{Operator: op, Want: "KRPosControl", Got: m.Control()}
	}
	if c.KR == nil {
		c.KR = make(map[string]string)
	}
	return c, nil
}

// AppendOperator appends machine Y into partition Part of machine X:
// X, Y -> X[Y].
type AppendOperator struct {
	X, Y int
	Part int
}

// NewAppendOperator makes an AppendOperator that uses partition 1.
func NewAppendOperator(x, y int) *AppendOperator {
	return &AppendOperator{X: x, Y: y, Part: 1}
}

// Act returns a sequence with just X.
func (o *AppendOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	x, err := at("Append", seq, o.X)
	if err != nil {
		return nil, err
	}
	y, err := at("Append", seq, o.Y)
	if err != nil {
		return nil, err
	}
	if err = x.Append(y, o.Part); err != nil {
		return nil, err
	}
	util.Logf("Append %s", graph.DescribeIds(x))
	return []*graph.Machine{x}, nil
}

// FeatChangeOperator sets one feature of a single machine that has a
// KRPosControl.
type FeatChangeOperator struct {
	Key, Value string
}

func (o *FeatChangeOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	if len(seq) != 1 {
		return nil, &ArityError{Operator: "FeatChange", Want: 1, Got: len(seq)}
	}
	c, err := krControl("FeatChange", seq[0])
	if err != nil {
		return nil, err
	}
	c.KR[o.Key] = o.Value
	return []*graph.Machine{seq[0]}, nil
}

// FeatCopyOperator copies features from the KRPosControl of machine
// From to that of machine To.  Keys that From doesn't have are
// skipped.  The sequence is returned as is.
//
// Embedded (derivational) features aren't copied.
type FeatCopyOperator struct {
	From, To int
	Keys     []string
}

func (o *FeatCopyOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	from, err := at("FeatCopy", seq, o.From)
	if err != nil {
		return nil, err
	}
	to, err := at("FeatCopy", seq, o.To)
	if err != nil {
		return nil, err
	}
	src, err := krControl("FeatCopy", from)
	if err != nil {
		return nil, err
	}
	dst, err := krControl("FeatCopy", to)
	if err != nil {
		return nil, err
	}
	for _, k := range o.Keys {
		if v, have := src.KR[k]; have {
			dst.KR[k] = v
		}
	}
	return seq, nil
}

// DeleteOperator removes the Nth machine from the sequence.
type DeleteOperator struct {
	N int
}

func (o *DeleteOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	if _, err := at("Delete", seq, o.N); err != nil {
		return nil, err
	}
	acc := make([]*graph.Machine, 0, len(seq)-1)
	acc = append(acc, seq[:o.N]...)
	return append(acc, seq[o.N+1:]...), nil
}

// AddArbitraryStringOperator appends a literal string into partition
// Part of machine X.  The sequence is returned as is.
type AddArbitraryStringOperator struct {
	X     int
	Value string
	Part  int
}

func (o *AddArbitraryStringOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	x, err := at("AddArbitraryString", seq, o.X)
	if err != nil {
		return nil, err
	}
	if err = x.Append(o.Value, o.Part); err != nil {
		return nil, err
	}
	return seq, nil
}

// CreateBinaryOperator makes a new binary concept named What with
// First in partition 1 and Second in partition 2.  The input sequence
// is ignored.
type CreateBinaryOperator struct {
	What          string
	First, Second *graph.Machine
}

func (o *CreateBinaryOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	m := graph.NewConcept(o.What, 2)
	if err := m.Append(o.First, 1); err != nil {
		return nil, err
	}
	if err := m.Append(o.Second, 2); err != nil {
		return nil, err
	}
	return []*graph.Machine{m}, nil
}

// FillArgumentOperator puts an argument into the slots of a template
// that are marked by a case machine (one whose printname is Case).
type FillArgumentOperator struct {
	Case string
}

// Fill replaces, in place, every machine named Case in partitions 1..n
// of the template (recursively) with arg.  Machines that aren't
// replaced are searched in turn.  Returns the number of replacements.
func (o *FillArgumentOperator) Fill(arg, template *graph.Machine) int {
	util.Logf("FillArgument(%s) %s into %s", o.Case, arg.Ref(), graph.DescribeIds(template))
	return o.fill(arg, template, make(map[*graph.Machine]bool))
}

func (o *FillArgumentOperator) fill(arg, m *graph.Machine, visited map[*graph.Machine]bool) int {
	if m == nil || visited[m] {
		return 0
	}
	visited[m] = true

	n := 0
	for i, p := range m.Partitions() {
		if i == 0 {
			continue
		}
		for j, x := range p {
			sub, is := x.(*graph.Machine)
			if !is {
				continue
			}
			if sub.PrintName() == o.Case {
				p[j] = arg
				n++
			} else {
				n += o.fill(arg, sub, visited)
			}
		}
	}
	return n
}

// Act fills the first machine of the sequence into the template in the
// working area.  The sequence is returned as is.
func (o *FillArgumentOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	arg, err := at("FillArgument", seq, 0)
	if err != nil {
		return nil, err
	}
	if template := wa.Get(); template != nil {
		o.Fill(arg, template)
	}
	return seq, nil
}

// ExpandOperator expands the first machine of the sequence through a
// lexicon and puts the result in the working area.
type ExpandOperator struct {
	Lexicon lexicon.Lexicon
}

func (o *ExpandOperator) Act(seq []*graph.Machine, wa *WorkingArea) ([]*graph.Machine, error) {
	m, err := at("Expand", seq, 0)
	if err != nil {
		return nil, err
	}
	if err = o.Lexicon.Expand(m); err != nil {
		return nil, err
	}
	if wa != nil {
		wa.Set(m)
	}
	return seq, nil
}
