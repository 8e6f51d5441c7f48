/* Copyright 2018-2026 Comcast Cable Communications Management, LLC
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

// Package match implements boolean predicates over single machines.
//
// Every Matcher fails closed: if a predicate can't be evaluated (wrong
// kind of control, missing data, a panic), Match returns false rather
// than an error.  That lets AND/OR/NOT combine predicates over
// heterogeneous machines without type guards at each site.
//
// Configuration problems (a bad pattern, a missing category, an
// unreadable file) are reported by the constructors instead.
package match

import (
	"fmt"
	"regexp"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/util"
)

// Matcher is a predicate over a machine.
type Matcher interface {
	Match(m *graph.Machine) bool
}

// Result is the outcome of evaluating a leaf predicate.  A Result
// with a non-nil Err is a failure to evaluate, which Match treats as
// false.
type Result struct {
	OK  bool
	Err error
}

func yes() Result {
	return Result{OK: true}
}

func no() Result {
	return Result{}
}

func failed(err error) Result {
	return Result{Err: err}
}

func boolResult(b bool) Result {
	return Result{OK: b}
}

// evaluate runs f and collapses its Result to a bool.
func evaluate(name string, m *graph.Machine, f func(*graph.Machine) Result) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			util.Logf("panic in %s matcher: %v", name, r)
			ok = false
		}
	}()

	if m == nil {
		util.Logf("%s matcher given nil machine", name)
		return false
	}

	r := f(m)
	if r.Err != nil {
		util.Logf("%s matcher failed on %s: %v", name, m.Ref(), r.Err)
		return false
	}
	util.Logf("matching of %s by %s is %v", m.Ref(), name, r.OK)
	return r.OK
}

// WrongControl is the failure reason when a machine's control isn't
// the kind a matcher needs.
type WrongControl struct {
	Want string
	Got  graph.Control
}

func (e *WrongControl) Error() string {
	return fmt.Sprintf("control %T isn't a %s", e.Got, e.Want)
}

// compile builds a regexp that's either searched for or, if exact,
// must match the whole string.
func compile(pattern string, exact bool) (*regexp.Regexp, error) {
	if exact {
		pattern = "^(?:" + pattern + ")$"
	}
	return regexp.Compile(pattern)
}

// PrintnameMatcher matches a machine's printname against a pattern.
type PrintnameMatcher struct {
	re *regexp.Regexp
}

// NewPrintnameMatcher compiles the pattern.  If exact, the pattern
// must match the whole printname.
func NewPrintnameMatcher(pattern string, exact bool) (*PrintnameMatcher, error) {
	re, err := compile(pattern, exact)
	if err != nil {
		return nil, err
	}
	return &PrintnameMatcher{re}, nil
}

func (pm *PrintnameMatcher) test(m *graph.Machine) Result {
	return boolResult(pm.re.MatchString(m.PrintName()))
}

func (pm *PrintnameMatcher) Match(m *graph.Machine) bool {
	return evaluate("printname", m, pm.test)
}

// PosControlMatcher matches the part-of-speech code of a machine with
// a PosControl or KRPosControl.  Other machines never match.
type PosControlMatcher struct {
	re *regexp.Regexp
}

func NewPosControlMatcher(pattern string, exact bool) (*PosControlMatcher, error) {
	re, err := compile(pattern, exact)
	if err != nil {
		return nil, err
	}
	return &PosControlMatcher{re}, nil
}

func (pm *PosControlMatcher) test(m *graph.Machine) Result {
	var pos string
	switch c := m.Control().(type) {
	case *graph.PosControl:
		pos = c.Pos
	case *graph.KRPosControl:
		pos = c.Pos
	default:
		return failed(&WrongControl{"PosControl", c})
	}
	return boolResult(pm.re.MatchString(pos))
}

func (pm *PosControlMatcher) Match(m *graph.Machine) bool {
	return evaluate("pos", m, pm.test)
}

// ConceptMatcher matches concepts whose printname matches a pattern.
type ConceptMatcher struct {
	PrintnameMatcher
}

func NewConceptMatcher(pattern string, exact bool) (*ConceptMatcher, error) {
	pm, err := NewPrintnameMatcher(pattern, exact)
	if err != nil {
		return nil, err
	}
	return &ConceptMatcher{*pm}, nil
}

func (cm *ConceptMatcher) test(m *graph.Machine) Result {
	if r := cm.PrintnameMatcher.test(m); !r.OK {
		return r
	}
	_, is := m.Control().(*graph.ConceptControl)
	return boolResult(is)
}

func (cm *ConceptMatcher) Match(m *graph.Machine) bool {
	return evaluate("concept", m, cm.test)
}

// SatisfiedAVMMatcher matches machines whose control is a
// graph.Satisfier reporting Satisfied() == the given value.  Machines
// with other controls never match.
type SatisfiedAVMMatcher struct {
	Satisfied bool
}

func NewSatisfiedAVMMatcher(satisfied bool) *SatisfiedAVMMatcher {
	return &SatisfiedAVMMatcher{satisfied}
}

func (sm *SatisfiedAVMMatcher) test(m *graph.Machine) Result {
	s, is := m.Control().(graph.Satisfier)
	if !is {
		return failed(&WrongControl{"Satisfier", m.Control()})
	}
	if s.Satisfied() == sm.Satisfied {
		return yes()
	}
	return no()
}

func (sm *SatisfiedAVMMatcher) Match(m *graph.Machine) bool {
	return evaluate("avm", m, sm.test)
}
