package core

// These errors are configuration errors: they indicate a bad FSA
// definition, not bad input.

import (
	"errors"
	"strconv"
)

// DuplicateState occurs when a state id is registered twice.
type DuplicateState struct {
	FSA     string
	StateId string
}

func (e *DuplicateState) Error() string {
	return `state "` + e.StateId + `" already exists in fsa "` + e.FSA + `"`
}

// SecondInitialState occurs when an initial state is added to an FSA
// that already has one.
type SecondInitialState struct {
	FSA      string
	StateId  string
	Existing string
}

func (e *SecondInitialState) Error() string {
	return `state "` + e.StateId + `" can't be initial in fsa "` + e.FSA +
		`" because "` + e.Existing + `" already is`
}

// UnknownState occurs when a transition refers to a state that hasn't
// been added.
type UnknownState struct {
	FSA     string
	StateId string
}

func (e *UnknownState) Error() string {
	return `state "` + e.StateId + `" not found in fsa "` + e.FSA + `"`
}

// NoInitialState occurs when an FSA without an initial state is Reset.
type NoInitialState struct {
	FSA string
}

func (e *NoInitialState) Error() string {
	return `fsa "` + e.FSA + `" has no initial state`
}

// BadPattern occurs when a transition pattern doesn't compile.
type BadPattern struct {
	Pattern string
	Err     error
}

func (e *BadPattern) Error() string {
	return "bad pattern " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *BadPattern) Unwrap() error {
	return e.Err
}

// UnknownPatternSyntax is returned when an FSASpec names a pattern
// syntax that isn't supported.
var UnknownPatternSyntax = errors.New("unknown pattern syntax")
