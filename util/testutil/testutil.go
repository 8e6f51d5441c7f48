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

// Package testutil has helpers for tests that build sequences of
// machines.
package testutil

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Comcast/cxg/graph"
)

// JS renders its argument as JSON or as a string indicating an error.
func JS(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		log.Printf("warning: testutil.JS error %s for %#v", err, x)
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}

// Seq is graph.NewWords.
//
//	Seq("kek/ADJ", "kockat/NOUN<CAS<ACC>>")
func Seq(specs ...string) []*graph.Machine {
	return graph.NewWords(specs...)
}

// Names returns the printnames of the machines.
func Names(ms []*graph.Machine) []string {
	acc := make([]string, len(ms))
	for i, m := range ms {
		acc[i] = m.PrintName()
	}
	return acc
}

// Controls returns the String() of each machine's control ("" for a
// nil control).
func Controls(ms []*graph.Machine) []string {
	acc := make([]string, len(ms))
	for i, m := range ms {
		if c := m.Control(); c != nil {
			acc[i] = c.String()
		}
	}
	return acc
}
