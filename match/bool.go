package match

import (
	"github.com/Comcast/cxg/graph"
)

// NotMatcher is the boolean NOT.
type NotMatcher struct {
	M Matcher
}

func Not(m Matcher) *NotMatcher {
	return &NotMatcher{m}
}

func (nm *NotMatcher) Match(m *graph.Machine) bool {
	return evaluate("not", m, func(m *graph.Machine) Result {
		return boolResult(!nm.M.Match(m))
	})
}

// AndMatcher is the boolean AND.  It stops at the first failing
// matcher.  With no matchers it matches everything.
type AndMatcher struct {
	Ms []Matcher
}

func And(ms ...Matcher) *AndMatcher {
	return &AndMatcher{ms}
}

func (am *AndMatcher) Match(m *graph.Machine) bool {
	return evaluate("and", m, func(m *graph.Machine) Result {
		for _, sub := range am.Ms {
			if !sub.Match(m) {
				return no()
			}
		}
		return yes()
	})
}

// OrMatcher is the boolean OR.  It stops at the first succeeding
// matcher.  With no matchers it matches nothing.
type OrMatcher struct {
	Ms []Matcher
}

func Or(ms ...Matcher) *OrMatcher {
	return &OrMatcher{ms}
}

func (om *OrMatcher) Match(m *graph.Machine) bool {
	return evaluate("or", m, func(m *graph.Machine) Result {
		for _, sub := range om.Ms {
			if sub.Match(m) {
				return yes()
			}
		}
		return no()
	})
}

// Func adapts a plain function.  A panic in f counts as false.
type Func func(m *graph.Machine) bool

func (f Func) Match(m *graph.Machine) bool {
	return evaluate("func", m, func(m *graph.Machine) Result {
		return boolResult(f(m))
	})
}
