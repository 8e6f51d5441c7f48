package core

import (
	"errors"
	"testing"
)

func chain(t *testing.T) *FSA {
	f := NewFSA("the")
	for _, s := range []struct {
		id             string
		initial, final bool
	}{
		{"0", true, false},
		{"1", false, false},
		{"2", false, true},
	} {
		if err := f.AddState(s.id, s.initial, s.final); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.AddTransition("^the$", "0", "1"); err != nil {
		t.Fatal(err)
	}
	if err := f.AddTransition("^NOUN.*", "1", "2"); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestAddStateErrors(t *testing.T) {
	f := NewFSA("test")
	if err := f.AddState("0", true, false); err != nil {
		t.Fatal(err)
	}

	err := f.AddState("0", false, false)
	var dup *DuplicateState
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateState but received %v", err)
	}

	err = f.AddState("1", true, false)
	var second *SecondInitialState
	if !errors.As(err, &second) {
		t.Fatalf("expected SecondInitialState but received %v", err)
	}
	if second.Existing != "0" {
		t.Fatalf("existing initial state: %s", second.Existing)
	}
	if _, have := f.State("1"); have {
		t.Fatal("rejected state was registered")
	}

	// The empty string is a legal id, and it still counts as the
	// initial state.
	g := NewFSA("empty")
	if err := g.AddState("", true, false); err != nil {
		t.Fatal(err)
	}
	if !g.HasInitial() {
		t.Fatal("no initial state")
	}
	err = g.AddState("x", true, true)
	if !errors.As(err, &second) {
		t.Fatalf("expected SecondInitialState but received %v", err)
	}
	if second.Existing != "" || g.Initial() != "" {
		t.Fatalf("initial state changed to %q", g.Initial())
	}
	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}
}

func TestAddTransitionErrors(t *testing.T) {
	f := NewFSA("test")
	if err := f.AddState("0", true, false); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		description string
		pattern     string
		from, to    string
		check       func(error) bool
	}{
		{
			description: "unknown source",
			pattern:     "x",
			from:        "nope",
			to:          "0",
			check: func(err error) bool {
				var e *UnknownState
				return errors.As(err, &e) && e.StateId == "nope"
			},
		},
		{
			description: "unknown destination",
			pattern:     "x",
			from:        "0",
			to:          "nope",
			check: func(err error) bool {
				var e *UnknownState
				return errors.As(err, &e)
			},
		},
		{
			description: "bad pattern",
			pattern:     "NOUN(",
			from:        "0",
			to:          "0",
			check: func(err error) bool {
				var e *BadPattern
				return errors.As(err, &e) && e.Unwrap() != nil
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			err := f.AddTransition(tc.pattern, tc.from, tc.to)
			if !tc.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
	if n := len(f.AllTransitions()); n != 0 {
		t.Fatalf("%d transitions registered", n)
	}
}

func TestResetInFinal(t *testing.T) {
	for _, initialIsFinal := range []bool{true, false} {
		f := NewFSA("test")
		if err := f.AddState("0", true, initialIsFinal); err != nil {
			t.Fatal(err)
		}
		if err := f.Reset(); err != nil {
			t.Fatal(err)
		}
		if f.InFinal() != initialIsFinal {
			t.Fatalf("InFinal() == %v after Reset with final initial state %v",
				f.InFinal(), initialIsFinal)
		}
	}
}

func TestNoInitialState(t *testing.T) {
	f := NewFSA("empty")
	var e *NoInitialState
	if err := f.Reset(); !errors.As(err, &e) {
		t.Fatalf("expected NoInitialState but received %v", err)
	}
	if _, err := f.Accepts(nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestReadSymbol(t *testing.T) {
	f := chain(t)

	if !f.ReadSymbol("the") {
		t.Fatal("the")
	}
	if f.Current() != "1" {
		t.Fatalf("at %s", f.Current())
	}

	// No transition for an adjective.
	if f.ReadSymbol("ADJ") {
		t.Fatal("ADJ shouldn't match")
	}
	if f.Current() != "1" {
		t.Fatalf("cursor moved to %s", f.Current())
	}
	if !f.Failed() {
		t.Fatal("failure not recorded")
	}

	// Even a good symbol can't rescue this attempt.
	if f.ReadSymbol("NOUN") {
		t.Fatal("read after failure")
	}
	if f.InFinal() {
		t.Fatal("final after failure")
	}

	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}
	if f.Failed() || f.Current() != "0" {
		t.Fatal("Reset didn't reset")
	}
}

func TestFirstMatchWins(t *testing.T) {
	f := NewFSA("overlap")
	for _, id := range []string{"0", "1", "2"} {
		if err := f.AddState(id, id == "0", id != "0"); err != nil {
			t.Fatal(err)
		}
	}
	// Both patterns match "NOUN<CAS<ACC>>".
	if err := f.AddTransition("NOUN", "0", "1"); err != nil {
		t.Fatal(err)
	}
	if err := f.AddTransition("^NOUN<CAS<ACC>>$", "0", "2"); err != nil {
		t.Fatal(err)
	}
	f.ReadSymbol("NOUN<CAS<ACC>>")
	if f.Current() != "1" {
		t.Fatalf("took transition to %s", f.Current())
	}
}

func TestAccepts(t *testing.T) {
	f := chain(t)

	tests := []struct {
		symbols []string
		want    bool
	}{
		{[]string{"the", "NOUN<CAS<ACC>>"}, true},
		{[]string{"the", "NOUN"}, true},
		{[]string{"the"}, false},
		{[]string{"a", "NOUN"}, false},
		{[]string{"the", "NOUN", "NOUN"}, false},
		{nil, false},
	}
	for _, tc := range tests {
		// Replaying must give the same verdict.
		for i := 0; i < 2; i++ {
			got, err := f.Accepts(tc.symbols)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("Accepts(%q) == %v (round %d)", tc.symbols, got, i)
			}
		}
	}
}

func TestCopy(t *testing.T) {
	f := chain(t)
	g := f.Copy()

	f.ReadSymbol("the")
	if g.Current() != "0" {
		t.Fatal("copy shares the cursor")
	}
	if ok, _ := g.Accepts([]string{"the", "NOUN"}); !ok {
		t.Fatal("copy doesn't accept")
	}
	if f.Current() != "1" {
		t.Fatal("copy moved the original cursor")
	}

	if err := g.AddState("3", false, true); err != nil {
		t.Fatal(err)
	}
	if _, have := f.State("3"); have {
		t.Fatal("copy shares states")
	}
}

func TestFinals(t *testing.T) {
	f := chain(t)
	finals := f.Finals()
	if len(finals) != 1 || finals[0] != "2" {
		t.Fatalf("finals: %v", finals)
	}
	if len(f.States()) != 3 {
		t.Fatal("states")
	}
	if !f.HasTransition("^the$", "0", "1") || f.HasTransition("^the$", "0", "2") {
		t.Fatal("HasTransition")
	}
}

func TestUncompiledTransitionMatches(t *testing.T) {
	s, err := ParseFSASpec([]byte(`
name: np
states:
  - id: "0"
    initial: true
  - id: "1"
    final: true
transitions:
  - from: "0"
    pattern: "^NOUN.*"
    to: "1"
  - from: "0"
    pattern: "(("
    to: "1"
`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		t      *Transition
		symbol string
		want   bool
	}{
		{s.Transitions[0], "NOUN<CAS<ACC>>", true},
		{s.Transitions[0], "ADJ", false},
		{s.Transitions[1], "((", false},
	}
	for _, tc := range tests {
		if got := tc.t.Matches(tc.symbol); got != tc.want {
			t.Errorf("%q on %q: expected %v", tc.t.Pattern, tc.symbol, tc.want)
		}
	}

	f := chain(t)
	for _, tr := range f.Spec().Transitions {
		if tr.Matches("nope") {
			t.Errorf("%q matched", tr.Pattern)
		}
	}
	if !f.Spec().Transitions[0].Matches("the") {
		t.Error("spec transition didn't match")
	}
}
