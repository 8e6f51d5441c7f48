package tools

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
	"testing"
)

func TestInline(t *testing.T) {
	input := `
I like %inline("tacos"), and
I also like %inline("queso").
Both are delicious.
`
	want := `
I like TACOS, and
I also like QUESO.
Both are delicious.
`

	find := func(name string) ([]byte, error) {
		return []byte(strings.ToUpper(name)), nil
	}

	got, err := Inline([]byte(input), find)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		log.Fatalf("got %s", got)
	}
}

func TestReadFSASpec(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("ts.yaml", `- {from: "0", pattern: "^ADJ.*", to: "0"}
- {from: "0", pattern: "^NOUN.*", to: "1"}
`)
	write("np.yaml", `name: np
states:
  - {id: "0", initial: true}
  - {id: "1", final: true}
transitions:
%inline("ts.yaml")
`)

	spec, err := ReadFSASpec(filepath.Join(dir, "np.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := spec.Compile()
	if err != nil {
		t.Fatal(err)
	}
	ok, err := f.Accepts([]string{"ADJ", "NOUN<CAS<ACC>>"})
	if err != nil || !ok {
		t.Fatalf("ok: %v, err: %v", ok, err)
	}
}
