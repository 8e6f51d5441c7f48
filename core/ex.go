package core

// TurnstileSpec makes an example FSASpec that's useful to have around.
//
// See https://en.wikipedia.org/wiki/Finite-state_machine#Example:_coin-operated_turnstile.
//
// This acceptor accepts any sequence of "coin" and "push" symbols that
// leaves the turnstile unlocked.
func TurnstileSpec() *FSASpec {
	return &FSASpec{
		Name:          "turnstile",
		Doc:           "A coin unlocks the turnstile.  A push locks it again.",
		PatternSyntax: "exact",
		States: []*State{
			{Id: "locked", Initial: true},
			{Id: "unlocked", Final: true},
		},
		Transitions: []*Transition{
			{From: "locked", Pattern: "coin", To: "unlocked"},
			{From: "locked", Pattern: "push", To: "locked"},
			{From: "unlocked", Pattern: "coin", To: "unlocked"},
			{From: "unlocked", Pattern: "push", To: "locked"},
		},
	}
}

// TurnstileFSA compiles TurnstileSpec.
func TurnstileFSA() (*FSA, error) {
	return TurnstileSpec().Compile()
}
