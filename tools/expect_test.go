package tools

import (
	"errors"
	"testing"

	"github.com/Comcast/cxg/core"
)

var turnstileSession = `
doc: Turnstile cases
spec:
  name: turnstile
  patternSyntax: exact
  states:
    - id: locked
      initial: true
    - id: unlocked
      final: true
  transitions:
    - {from: locked, pattern: coin, to: unlocked}
    - {from: locked, pattern: push, to: locked}
    - {from: unlocked, pattern: coin, to: unlocked}
    - {from: unlocked, pattern: push, to: locked}
cases:
  - symbols: [coin]
    accept: true
  - symbols: [coin, push]
    accept: false
  - doc: Unknown symbols fail.
    symbols: [coin, kick]
    accept: false
  - symbols: []
    accept: false
`

func TestExpectBasic(t *testing.T) {
	s, err := ParseSession([]byte(turnstileSession))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Cases); n != 4 {
		t.Fatalf("parsed %d cases", n)
	}
	if err = s.Run(nil); err != nil {
		t.Fatal(err)
	}
}

func TestExpectFailures(t *testing.T) {
	f, err := core.TurnstileFSA()
	if err != nil {
		t.Fatal(err)
	}
	s := &Session{
		Cases: []Case{
			{Symbols: []string{"coin"}, Accept: true},
			{Symbols: []string{"push"}, Accept: true},
		},
	}
	err = s.Run(f)
	var fs Failures
	if !errors.As(err, &fs) {
		t.Fatalf("got %v", err)
	}
	if len(fs) != 1 || fs[0].Index != 1 || fs[0].Got {
		t.Fatalf("%#v", fs)
	}

	if err = (&Session{}).Run(nil); !errors.Is(err, ErrNoAcceptor) {
		t.Fatal(err)
	}
}
