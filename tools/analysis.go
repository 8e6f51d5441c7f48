/* Copyright 2018 Comcast Cable Communications Management, LLC
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

package tools

import (
	"io"
	"sort"

	"github.com/Comcast/cxg/core"

	"gopkg.in/yaml.v2"
)

// SpecAnalysis reports on the structure of an FSASpec.
type SpecAnalysis struct {
	spec *core.FSASpec

	Errors      []string `yaml:"errors,omitempty"`
	StateCount  int      `yaml:"states"`
	Transitions int      `yaml:"transitions"`
	Initial     string   `yaml:"initial,omitempty"`
	Finals      []string `yaml:"finals,omitempty"`

	// TerminalStates have no outgoing transitions.
	TerminalStates []string `yaml:"terminal,omitempty"`

	// Unreachable states can't be reached from the initial state.
	Unreachable []string `yaml:"unreachable,omitempty"`

	// Dead states can't reach a final state.
	Dead []string `yaml:"dead,omitempty"`

	// MissingStates are referenced by transitions but not defined.
	MissingStates []string `yaml:"missing,omitempty"`

	// Shadowed transitions repeat the pattern of an earlier
	// transition from the same state, so they are never taken.
	Shadowed []string `yaml:"shadowed,omitempty"`
}

// Analyze examines the spec.  Problems that would prevent the spec from
// compiling are reported in Errors.
func Analyze(s *core.FSASpec) (*SpecAnalysis, error) {

	a := SpecAnalysis{
		spec:   s,
		Errors: make([]string, 0, 8),
	}

	defined := make(map[string]bool, len(s.States))
	finals := make(map[string]bool)
	hasInitial := false
	for _, st := range s.States {
		if st == nil {
			continue
		}
		if defined[st.Id] {
			a.Errors = append(a.Errors, (&core.DuplicateState{FSA: s.Name, StateId: st.Id}).Error())
		}
		defined[st.Id] = true
		a.StateCount++
		if st.Initial {
			if hasInitial {
				a.Errors = append(a.Errors, (&core.SecondInitialState{FSA: s.Name, StateId: st.Id, Existing: a.Initial}).Error())
			} else {
				a.Initial = st.Id
				hasInitial = true
			}
		}
		if st.Final {
			finals[st.Id] = true
		}
	}
	if !hasInitial {
		a.Errors = append(a.Errors, (&core.NoInitialState{FSA: s.Name}).Error())
	}

	out := make(map[string][]string)
	in := make(map[string][]string)
	missing := make(map[string]bool)
	patterns := make(map[string]bool)
	shadowed := make(map[string]bool)
	for _, t := range s.Transitions {
		if t == nil {
			continue
		}
		a.Transitions++
		for _, id := range []string{t.From, t.To} {
			if !defined[id] {
				missing[id] = true
			}
		}
		key := t.From + " " + t.Pattern
		if patterns[key] {
			shadowed[t.From+" -"+t.Pattern+"-> "+t.To] = true
		}
		patterns[key] = true
		out[t.From] = append(out[t.From], t.To)
		in[t.To] = append(in[t.To], t.From)
	}

	terminal := make(map[string]bool)
	for id := range defined {
		if len(out[id]) == 0 {
			terminal[id] = true
		}
	}

	reachable := closure(a.Initial, out)
	live := make(map[string]bool)
	for id := range finals {
		for x := range closure(id, in) {
			live[x] = true
		}
	}

	a.Finals = keysToStringSlice(finals)
	a.TerminalStates = keysToStringSlice(terminal)
	a.Unreachable = keysToStringSlice(diffKeys(defined, reachable))
	a.Dead = keysToStringSlice(diffKeys(defined, live))
	a.MissingStates = keysToStringSlice(missing)
	a.Shadowed = keysToStringSlice(shadowed)

	return &a, nil
}

// WriteAnalysis writes the analysis as YAML.
func WriteAnalysis(a *SpecAnalysis, w io.Writer) error {
	bs, err := yaml.Marshal(a)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// closure returns the states reachable from id (including id) along
// the given edges.
func closure(id string, edges map[string][]string) map[string]bool {
	acc := make(map[string]bool)
	if id == "" {
		return acc
	}
	todo := []string{id}
	for 0 < len(todo) {
		x := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if acc[x] {
			continue
		}
		acc[x] = true
		todo = append(todo, edges[x]...)
	}
	return acc
}

// keysToStringSlice converts the keys from a map into a sorted slice
// of strings.  Optionally, it can add a default value if the map is
// empty.
func keysToStringSlice(m map[string]bool, defaultValue ...string) []string {
	var list []string
	for key, ok := range m {
		if ok {
			list = append(list, key)
		}
	}
	sort.Strings(list)

	if len(list) == 0 && len(defaultValue) > 0 {
		return []string{defaultValue[0]}
	}

	return list
}

// diffKeys identifies the keys present in 'all' but not in 'used'.
func diffKeys(all map[string]bool, used map[string]bool) map[string]bool {
	diff := make(map[string]bool)
	for key := range all {
		if !used[key] {
			diff[key] = true
		}
	}
	return diff
}
