package match

import (
	"sort"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/lexicon"
	"github.com/Comcast/cxg/util"
)

// IsA is the printname of the relation EnumMatcher looks for.
var IsA = "IS_A"

// EnumMatcher matches machines whose printname is a member of a
// category, as recorded by IS_A relations in a lexicon.
//
// Members are collected once, when the matcher is made:
//
//  1. For each IS_A machine in partition 1 of the category's own
//     entry, the first machine in that IS_A's partition 1.
//  2. Every entry that has, in its partition 1, an IS_A machine whose
//     partition 2 starts with the category.  The category's own
//     entry isn't a member of itself.
type EnumMatcher struct {
	Name    string
	members map[string]bool
}

// NewEnumMatcher collects the members of the named category.  The
// category must have an entry in the lexicon.
func NewEnumMatcher(name string, lex lexicon.Lexicon) (*EnumMatcher, error) {
	def, have := lex.Static(name)
	if !have {
		return nil, &lexicon.UnknownWord{Name: name}
	}

	members := make(map[string]bool)
	for _, isa := range def.Children(1) {
		if isa.PrintName() != IsA {
			continue
		}
		if subj := isa.Children(1); 0 < len(subj) {
			members[subj[0].String()] = true
		}
	}

	err := lex.Each(func(pn string, m *graph.Machine) error {
		if pn == name {
			return nil
		}
		for _, child := range m.Children(1) {
			if child.PrintName() != IsA {
				continue
			}
			if obj := child.Children(2); 0 < len(obj) && obj[0].PrintName() == name {
				members[pn] = true
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	em := &EnumMatcher{
		Name:    name,
		members: members,
	}
	util.Logf("EnumMatcher(%s) created with machines %v", name, em.Members())
	return em, nil
}

// Members returns the sorted member names.
func (em *EnumMatcher) Members() []string {
	acc := make([]string, 0, len(em.members))
	for name := range em.members {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}

func (em *EnumMatcher) Match(m *graph.Machine) bool {
	return evaluate("enum "+em.Name, m, func(m *graph.Machine) Result {
		return boolResult(em.members[m.String()])
	})
}
