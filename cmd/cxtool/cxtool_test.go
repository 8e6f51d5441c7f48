package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestDemo(t *testing.T) {
	c := &Demo{}
	c.Flags().Parse(nil)
	out := &bytes.Buffer{}
	if err := c.Run(nil, nil, out); err != nil {
		t.Fatal(err)
	}
	want := `DummyNPConstruction: kockat/NOUN<CAS<ACC>>[1:kek/ADJ]
TheConstruction: kockat/NOUN<CAS<ACC>><DET>[1:kek/ADJ]
give: give/VERB[1:john/NOUN<CAS<NOM>> 2:kockat/NOUN<CAS<ACC>><DET>[1:kek/ADJ],"thing" 3:mary/NOUN<CAS<DAT>>]
`
	if got := out.String(); got != want {
		t.Fatalf("got\n%s\nwanted\n%s", got, want)
	}
}

func TestHypercubeThenAnalyze(t *testing.T) {
	h := &Hypercuber{}
	if err := h.Flags().Parse([]string{"-c", "NOM,ACC", "-start", "0"}); err != nil {
		t.Fatal(err)
	}
	spec := &bytes.Buffer{}
	if err := h.Run(nil, nil, spec); err != nil {
		t.Fatal(err)
	}

	a := &Analyzer{}
	report := &bytes.Buffer{}
	if err := a.Run(nil, spec, report); err != nil {
		t.Fatal(err)
	}
	s := report.String()
	if !strings.Contains(s, "states: 4") || !strings.Contains(s, "transitions: 4") {
		t.Fatal(s)
	}
	if strings.Contains(s, "unreachable") {
		t.Fatal(s)
	}

	if err := (&Hypercuber{}).Run(nil, nil, report); err != NoCases {
		t.Fatal(err)
	}
}

func TestLexiconStore(t *testing.T) {
	c := &Lexiconer{}
	if err := c.Flags().Parse([]string{"-enum", "animal", "-get", "give"}); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := c.Run(nil, nil, out); err != nil {
		t.Fatal(err)
	}
	want := "give/VERB[1:NOM/CONCEPT 2:ACC/CONCEPT,\"thing\" 3:DAT/CONCEPT]\ncat\ndog\nfox\n"
	if got := out.String(); got != want {
		t.Fatalf("got\n%s", got)
	}

	c = &Lexiconer{DB: filepath.Join(t.TempDir(), "lex.db"), Load: "nope.yaml"}
	if err := c.Run(nil, nil, out); err == nil {
		t.Fatal("should have complained")
	}
}

func TestMatch(t *testing.T) {
	c := &Matcher{}
	if err := c.Flags().Parse([]string{"-pos", "^NOUN", "-js", "node.name.length > 3", "kockat/NOUN", "kek/NOUN", "piros/ADJ"}); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := c.Run([]string{"kockat/NOUN", "kek/NOUN", "piros/ADJ"}, nil, out); err != nil {
		t.Fatal(err)
	}
	want := "kockat/NOUN true\nkek/NOUN false\npiros/ADJ false\n"
	if got := out.String(); got != want {
		t.Fatalf("got\n%s", got)
	}
}

func TestDemoIds(t *testing.T) {
	c := &Demo{}
	if err := c.Flags().Parse([]string{"-ids"}); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := c.Run(nil, nil, out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got\n%s", out.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "kockat#") || !strings.Contains(line, "kek#") {
			t.Fatalf("no ids in %s", line)
		}
	}
	if !strings.HasPrefix(lines[2], "give: give#") {
		t.Fatal(lines[2])
	}
}
