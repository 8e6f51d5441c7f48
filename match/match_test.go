package match

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/lexicon"
)

func constant(b bool) Matcher {
	return Func(func(*graph.Machine) bool { return b })
}

func TestDeMorgan(t *testing.T) {
	probe := graph.NewPos("kek", "ADJ")
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			A, B := constant(a), constant(b)

			if got, want := Not(And(A, B)).Match(probe), Or(Not(A), Not(B)).Match(probe); got != want {
				t.Fatalf("NOT(AND(%v,%v)) = %v, OR(NOT,NOT) = %v", a, b, got, want)
			}
			if got, want := Not(Or(A, B)).Match(probe), And(Not(A), Not(B)).Match(probe); got != want {
				t.Fatalf("NOT(OR(%v,%v)) = %v, AND(NOT,NOT) = %v", a, b, got, want)
			}
			if got := Not(Not(A)).Match(probe); got != a {
				t.Fatalf("NOT(NOT(%v)) = %v", a, got)
			}
		}
	}
}

func TestEmptyCombinators(t *testing.T) {
	probe := graph.NewPos("kek", "ADJ")
	if !And().Match(probe) {
		t.Fatal("empty AND should match")
	}
	if Or().Match(probe) {
		t.Fatal("empty OR shouldn't match")
	}
}

func TestLeaves(t *testing.T) {
	kockat := graph.NewPos("kockat", "NOUN<CAS<ACC>>")
	animal := graph.NewConcept("animal", 1)
	kr := graph.NewMachine("kutya", 1, graph.NewKRPosControl("NOUN"))

	mustPrintname := func(p string, exact bool) Matcher {
		m, err := NewPrintnameMatcher(p, exact)
		if err != nil {
			t.Fatal(err)
		}
		return m
	}
	mustPos := func(p string, exact bool) Matcher {
		m, err := NewPosControlMatcher(p, exact)
		if err != nil {
			t.Fatal(err)
		}
		return m
	}
	mustConcept := func(p string, exact bool) Matcher {
		m, err := NewConceptMatcher(p, exact)
		if err != nil {
			t.Fatal(err)
		}
		return m
	}

	tests := []struct {
		name string
		m    Matcher
		x    *graph.Machine
		want bool
	}{
		{"printname search", mustPrintname("ock", false), kockat, true},
		{"printname exact miss", mustPrintname("ock", true), kockat, false},
		{"printname exact", mustPrintname("kockat", true), kockat, true},
		{"pos", mustPos("^NOUN", false), kockat, true},
		{"pos exact miss", mustPos("NOUN", true), kockat, false},
		{"pos kr", mustPos("NOUN", true), kr, true},
		{"pos on concept", mustPos(".*", false), animal, false},
		{"concept", mustConcept("animal", true), animal, true},
		{"concept on word", mustConcept("kockat", true), kockat, false},
		{"nil machine", mustPrintname(".*", false), nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.m.Match(test.x); got != test.want {
				t.Fatalf("got %v, wanted %v", got, test.want)
			}
		})
	}
}

func TestBadPattern(t *testing.T) {
	if _, err := NewPrintnameMatcher("(", false); err == nil {
		t.Fatal("should have complained")
	}
}

func TestFailClosed(t *testing.T) {
	probe := graph.NewPos("kek", "ADJ")
	boom := Func(func(*graph.Machine) bool { panic("boom") })
	if boom.Match(probe) {
		t.Fatal("panic should be false")
	}
	// A failure is false, so NOT of a failure is true.
	if !Not(boom).Match(probe) {
		t.Fatal("NOT of a failure should be true")
	}

	pos, err := NewPosControlMatcher(".*", false)
	if err != nil {
		t.Fatal(err)
	}
	if pos.Match(graph.NewMachine("bare", 1, nil)) {
		t.Fatal("nil control should not match")
	}
}

func TestSatisfiedAVM(t *testing.T) {
	complete := graph.NewMachine("x", 1, &graph.AVM{
		Features: map[string]string{"CAS": "ACC"},
		Required: []string{"CAS"},
	})
	incomplete := graph.NewMachine("y", 1, &graph.AVM{
		Required: []string{"CAS"},
	})
	word := graph.NewPos("kek", "ADJ")

	sat, unsat := NewSatisfiedAVMMatcher(true), NewSatisfiedAVMMatcher(false)
	if !sat.Match(complete) || sat.Match(incomplete) || sat.Match(word) {
		t.Fatal("satisfied")
	}
	if unsat.Match(complete) || !unsat.Match(incomplete) || unsat.Match(word) {
		t.Fatal("unsatisfied")
	}
}

func TestFileContains(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "animals.txt")
	if err := ioutil.WriteFile(filename, []byte("Fox\n  Dog \n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	fm, err := NewFileContainsMatcher(filename)
	if err != nil {
		t.Fatal(err)
	}
	if n := fm.Len(); n != 2 {
		t.Fatalf("Len() = %d", n)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"fox", true},
		{"FOX", true},
		{"dog", true},
		{"cat", false},
		{"", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := fm.Match(graph.NewPos(test.name, "NOUN")); got != test.want {
				t.Fatalf("got %v, wanted %v", got, test.want)
			}
		})
	}

	if _, err = NewFileContainsMatcher(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("should have complained")
	}
}

func TestEnum(t *testing.T) {
	lex, err := lexicon.Example()
	if err != nil {
		t.Fatal(err)
	}
	em, err := NewEnumMatcher("animal", lex)
	if err != nil {
		t.Fatal(err)
	}

	if got := em.Members(); len(got) != 3 || got[0] != "cat" || got[1] != "dog" || got[2] != "fox" {
		t.Fatalf("members: %v", got)
	}

	for name, want := range map[string]bool{
		"dog":    true,
		"cat":    true,
		"fox":    true,
		"rose":   false,
		"animal": false,
	} {
		if got := em.Match(graph.NewPos(name, "NOUN")); got != want {
			t.Fatalf("%s: got %v, wanted %v", name, got, want)
		}
	}

	if _, err = NewEnumMatcher("mineral", lex); err == nil {
		t.Fatal("should have complained")
	}
}

func TestScript(t *testing.T) {
	ctx := context.Background()
	sm, err := NewScriptMatcher(ctx, nil, `node.concept && node.partitions[1].indexOf("IS_A") >= 0`)
	if err != nil {
		t.Fatal(err)
	}

	animal := graph.NewConcept("animal", 1)
	if err = animal.Append(graph.NewConcept("IS_A", 2), 1); err != nil {
		t.Fatal(err)
	}
	if !sm.Match(animal) {
		t.Fatal("should have matched")
	}
	if sm.Match(graph.NewPos("kek", "ADJ")) {
		t.Fatal("shouldn't have matched")
	}

	// A non-boolean result is a failure, which is false.
	bad, err := NewScriptMatcher(ctx, nil, `node.name`)
	if err != nil {
		t.Fatal(err)
	}
	if bad.Match(animal) {
		t.Fatal("non-boolean should be false")
	}

	if _, err = NewScriptMatcher(ctx, nil, `node.name ==`); err == nil {
		t.Fatal("should have complained")
	}
}
