package tools

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Comcast/cxg/core"

	"github.com/jsccast/yaml"
)

// Case is a sequence of symbols and the verdict an acceptor should
// reach on it.
type Case struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Symbols are given to the acceptor in order.
	Symbols []string `json:"symbols" yaml:"symbols"`

	// Accept is the expected verdict.
	Accept bool `json:"accept" yaml:"accept"`
}

// Session is mostly a sequence of Cases for one acceptor.
type Session struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Spec is the acceptor to test.  If nil, Run must be given
	// an FSA.
	Spec *core.FSASpec `json:"spec,omitempty" yaml:"spec,omitempty"`

	Cases []Case `json:"cases" yaml:"cases"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Failure describes a Case that didn't get the expected verdict.
type Failure struct {
	Index int
	Case  Case
	Got   bool
}

// Failures is the error returned by Session.Run.
type Failures []Failure

func (fs Failures) Error() string {
	acc := make([]string, len(fs))
	for i, f := range fs {
		acc[i] = fmt.Sprintf("case %d %v: got %v", f.Index, f.Case.Symbols, f.Got)
	}
	return strings.Join(acc, "; ")
}

// ErrNoAcceptor is returned when a Session has neither a Spec nor an
// FSA.
var ErrNoAcceptor = errors.New("session has no acceptor")

// ParseSession reads a Session in YAML (or JSON).
func ParseSession(bs []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Run processes all the Cases in the Session.
//
// The given FSA is used if not nil.  Otherwise the Session's Spec is
// compiled.  The FSA's cursor is left wherever the last Case put it.
//
// If any Case gets the wrong verdict, the returned error is a
// Failures.
func (s *Session) Run(f *core.FSA) error {
	if f == nil {
		if s.Spec == nil {
			return ErrNoAcceptor
		}
		var err error
		if f, err = s.Spec.Compile(); err != nil {
			return err
		}
	}

	var failures Failures
	for i, c := range s.Cases {
		got, err := f.Accepts(c.Symbols)
		if err != nil {
			return err
		}
		if s.Verbose {
			log.Printf("case %d %v: %v (%s)", i, c.Symbols, got, f.Current())
		}
		if got != c.Accept {
			failures = append(failures, Failure{
				Index: i,
				Case:  c,
				Got:   got,
			})
		}
	}
	if 0 < len(failures) {
		return failures
	}
	return nil
}
