package lexicon

import (
	"errors"

	"github.com/Comcast/cxg/graph"

	"github.com/jsccast/yaml"
)

// EntrySpec is the declarative form of a lexicon entry.
//
// An EntrySpec with only Literal set denotes a literal string in a
// partition.
//
//	name: dog
//	pos: NOUN
//	partitions:
//	  - []
//	  - - name: IS_A
//	      partitions: [[], [{name: dog}], [{name: animal}]]
//
// A non-nil KR, even an empty one, makes a KRPosControl, so JSON
// keeps it.
type EntrySpec struct {
	Name    string            `json:"name,omitempty" yaml:"name,omitempty"`
	Pos     string            `json:"pos,omitempty" yaml:"pos,omitempty"`
	KR      map[string]string `json:"kr" yaml:"kr,omitempty"`
	Concept bool              `json:"concept,omitempty" yaml:"concept,omitempty"`
	Literal string            `json:"literal,omitempty" yaml:"literal,omitempty"`

	// Partitions include partition 0.
	Partitions [][]*EntrySpec `json:"partitions,omitempty" yaml:"partitions,omitempty"`
}

// Spec is a whole lexicon.
type Spec struct {
	Doc     string       `json:"doc,omitempty" yaml:"doc,omitempty"`
	Entries []*EntrySpec `json:"entries" yaml:"entries"`
}

var (
	// MissingName is returned when an entry that isn't a literal
	// has no name.
	MissingName = errors.New("entry has no name")
)

func (e *EntrySpec) control() graph.Control {
	switch {
	case e.Concept:
		return &graph.ConceptControl{}
	case e.KR != nil:
		c := graph.NewKRPosControl(e.Pos)
		for k, v := range e.KR {
			c.KR[k] = v
		}
		return c
	case e.Pos != "":
		return &graph.PosControl{Pos: e.Pos}
	default:
		return nil
	}
}

// Machine builds a fresh machine from the spec.
func (e *EntrySpec) Machine() (*graph.Machine, error) {
	if e.Name == "" {
		return nil, MissingName
	}
	arity := len(e.Partitions) - 1
	if arity < 1 {
		arity = 1
	}
	m := graph.NewMachine(e.Name, arity, e.control())
	for i, p := range e.Partitions {
		for _, sub := range p {
			if sub == nil {
				continue
			}
			var x interface{}
			if sub.Name == "" && sub.Literal != "" {
				x = sub.Literal
			} else {
				c, err := sub.Machine()
				if err != nil {
					return nil, err
				}
				x = c
			}
			if err := m.Append(x, i); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ParseSpec reads a lexicon Spec in YAML (or JSON).
func ParseSpec(bs []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load builds a Memory lexicon from the Spec.
func (s *Spec) Load() (*Memory, error) {
	l := NewMemory()
	for _, e := range s.Entries {
		if e == nil {
			continue
		}
		m, err := e.Machine()
		if err != nil {
			return nil, err
		}
		l.Add(m)
	}
	return l, nil
}

// LoadYAML parses and loads a lexicon.
func LoadYAML(bs []byte) (*Memory, error) {
	s, err := ParseSpec(bs)
	if err != nil {
		return nil, err
	}
	return s.Load()
}
