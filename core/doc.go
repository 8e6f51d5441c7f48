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

// Package core provides the finite-state acceptor that constructions
// use to recognize sequences of machines.
//
// The primary type is FSA.  An FSA has states, exactly one of which is
// initial, and transitions labeled with patterns.  A pattern is a
// regular expression that's matched against a symbol, which in
// practice is the String() of a machine's control.  Anchors are part
// of the pattern, so "NOUN" matches anywhere in the symbol while
// "^NOUN$" must match all of it.
//
// Transitions leaving a state are tried in the order they were added,
// and the first one whose pattern matches is taken.  No attempt is
// made to find the "best" or longest match, so a state with
// overlapping patterns depends on registration order.
//
// An FSA has a cursor.  Reset() moves the cursor to the initial state;
// ReadSymbol() advances it.  If no transition matches, the cursor
// stays put and the FSA remembers the failure until the next Reset(),
// so InFinal() will report false for the rest of that attempt.
//
// The cursor makes an FSA unsafe for concurrent use.  Use Copy() to
// get an independent acceptor that shares the (immutable) transitions.
//
// An FSA can be built directly with AddState and AddTransition or
// declared as an FSASpec (perhaps in YAML) and Compile()d.
package core
