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
	"fmt"
	"io"
	"log"
	"strings"

	. "github.com/Comcast/cxg/core"
)

type MermaidOpts struct {
	// ShowPatterns will result in a transition label that's the
	// transition's pattern.
	ShowPatterns bool `json:"showPatterns"`

	// FinalFill is the fill color for final states.  Does not
	// apply if FinalClass is set.
	FinalFill string `json:"finalFill,omitempty"`

	// FinalClass will be the CSS class for final states.
	FinalClass string `json:"finalClass,omitempty"`

	// CurrentFill is the fill color for the toState given to
	// Mermaid.
	CurrentFill string `json:"currentFill,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given acceptor.
func Mermaid(spec *FSASpec, w io.WriteCloser, opts *MermaidOpts, fromState, toState string) error {

	if opts == nil {
		opts = &MermaidOpts{
			ShowPatterns: true,
			FinalFill:    "#bcf2db",
			CurrentFill:  "#f98b8b",
		}
	}

	log.Printf("processing %d states", len(spec.States))

	fmt.Fprintf(w, "graph LR\n")

	nids := make(map[string]string)
	num := 0

	state := func(s *State) string {
		if nid, already := nids[s.Id]; already {
			return nid
		}
		num++
		nid := fmt.Sprintf("n%d", num)
		nids[s.Id] = nid

		if s.Final {
			fmt.Fprintf(w, "  %s((\"%s\"))\n", nid, s.Id)
			if opts.FinalClass != "" {
				fmt.Fprintf(w, "  class %s %s\n", nid, opts.FinalClass)
			} else if opts.FinalFill != "" {
				fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.FinalFill)
			}
		} else {
			fmt.Fprintf(w, "  %s(\"%s\")\n", nid, s.Id)
		}
		if s.Id == toState && opts.CurrentFill != "" {
			fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.CurrentFill)
		}
		if s.Initial {
			fmt.Fprintf(w, "  start%s[ ] --> %s\n", nid, nid)
		}
		return nid
	}

	for _, s := range spec.States {
		if s != nil {
			state(s)
		}
	}

	for _, t := range spec.Transitions {
		if t == nil {
			continue
		}
		from := state(&State{Id: t.From})
		to := state(&State{Id: t.To})

		line, arrow := "--", "-->"
		if fromState == t.From && toState == t.To {
			line, arrow = "==", "==>"
		}
		if opts.ShowPatterns {
			p := strings.Replace(t.Pattern, `"`, `'`, -1)
			fmt.Fprintf(w, "  %s %s \"%s\" %s %s\n", from, line, htmlEscape(p), arrow, to)
		} else {
			fmt.Fprintf(w, "  %s %s %s\n", from, arrow, to)
		}
	}

	fmt.Fprintf(w, "\n")
	log.Printf("mermaid gen done")

	return w.Close()
}
