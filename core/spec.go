package core

import (
	"fmt"
	"regexp"

	"github.com/jsccast/yaml"
)

// DefaultPatternParser turns a pattern written in the given syntax
// into a regular expression.
//
//	"", "regexp": the pattern is already a regular expression
//	"literal":    the pattern must appear somewhere in the symbol
//	"exact":      the pattern must be the whole symbol
var DefaultPatternParser = func(syntax string, p string) (string, error) {
	switch syntax {
	case "", "regexp":
		return p, nil
	case "literal":
		return regexp.QuoteMeta(p), nil
	case "exact":
		return "^" + regexp.QuoteMeta(p) + "$", nil
	default:
		return "", fmt.Errorf("%w: %s", UnknownPatternSyntax, syntax)
	}
}

// FSASpec is a declarative description of an FSA.
//
// Unlike an FSA, a FSASpec has no cursor and can be serialized, so
// it's the form used for files and rendering.
type FSASpec struct {
	// Name is the generic name for the acceptor (usually the name
	// of the construction that owns it).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Version is optional and not interpreted.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Doc is general documentation, in Markdown.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// PatternSyntax says how to read transition patterns.  See
	// DefaultPatternParser.
	PatternSyntax string `json:"patternSyntax,omitempty" yaml:"patternSyntax,omitempty"`

	PatternParser func(string, string) (string, error) `json:"-" yaml:"-"`

	States []*State `json:"states" yaml:"states"`

	// Transitions are added in this order, which matters for
	// states with overlapping patterns.
	Transitions []*Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// ParseFSASpec reads an FSASpec in YAML (or JSON).
func ParseFSASpec(bs []byte) (*FSASpec, error) {
	var s FSASpec
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Compile builds a fresh FSA from the spec.
func (s *FSASpec) Compile() (*FSA, error) {
	parser := s.PatternParser
	if parser == nil {
		parser = DefaultPatternParser
	}

	f := NewFSA(s.Name)
	for _, st := range s.States {
		if st == nil {
			continue
		}
		if err := f.AddState(st.Id, st.Initial, st.Final); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Transitions {
		if t == nil {
			continue
		}
		p, err := parser(s.PatternSyntax, t.Pattern)
		if err != nil {
			return nil, err
		}
		if err = f.AddTransition(p, t.From, t.To); err != nil {
			return nil, err
		}
	}
	if !f.HasInitial() {
		return nil, &NoInitialState{s.Name}
	}
	return f, nil
}

// Spec describes the FSA as an FSASpec.  Patterns are given as
// regular expressions.
func (f *FSA) Spec() *FSASpec {
	s := &FSASpec{
		Name:          f.Name,
		PatternSyntax: "regexp",
		States:        f.States(),
	}
	for _, t := range f.AllTransitions() {
		s.Transitions = append(s.Transitions, &Transition{
			From:    t.From,
			Pattern: t.Pattern,
			To:      t.To,
		})
	}
	return s
}

// Copy makes a deep copy of the FSASpec.
func (s *FSASpec) Copy() *FSASpec {
	ss := make([]*State, 0, len(s.States))
	for _, st := range s.States {
		if st != nil {
			c := *st
			ss = append(ss, &c)
		}
	}
	ts := make([]*Transition, 0, len(s.Transitions))
	for _, t := range s.Transitions {
		if t != nil {
			ts = append(ts, &Transition{From: t.From, Pattern: t.Pattern, To: t.To})
		}
	}
	return &FSASpec{
		Name:          s.Name,
		Version:       s.Version,
		Doc:           s.Doc,
		PatternSyntax: s.PatternSyntax,
		PatternParser: s.PatternParser,
		States:        ss,
		Transitions:   ts,
	}
}
