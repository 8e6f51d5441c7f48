package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendGrowsPartitions(t *testing.T) {
	m := NewPos("kockat", "NOUN")
	require.Equal(t, 1, m.Arity())

	adj := NewPos("kek", "ADJ")
	require.NoError(t, m.Append(adj, 3))
	assert.Equal(t, 3, m.Arity())
	assert.Equal(t, []*Machine{adj}, m.Children(3))
	assert.Nil(t, m.Partition(7))

	require.NoError(t, m.Append("literal", 1))
	assert.Equal(t, []interface{}{"literal"}, m.Partition(1))
	assert.Empty(t, m.Children(1))
}

func TestAppendRejects(t *testing.T) {
	m := NewPos("x", "NOUN")

	var bad *BadPartition
	assert.ErrorAs(t, m.Append(NewPos("y", "ADJ"), -1), &bad)
	assert.Error(t, m.Append(42, 1))
}

func TestReplace(t *testing.T) {
	m := NewConcept("give", 2)
	acc := NewConcept("ACC", 0)
	require.NoError(t, m.Append(acc, 2))

	dog := NewPos("dog", "NOUN")
	require.NoError(t, m.Replace(2, 0, dog))
	assert.Same(t, dog, m.Children(2)[0])

	assert.Error(t, m.Replace(2, 1, dog))
	assert.Error(t, m.Replace(5, 0, dog))
}

func TestDescribe(t *testing.T) {
	noun := NewPos("kockat", "NOUN<CAS<ACC>>")
	require.NoError(t, noun.Append(NewPos("kek", "ADJ"), 1))
	require.NoError(t, noun.Append("red", 1))
	assert.Equal(t, `kockat/NOUN<CAS<ACC>>[1:kek/ADJ,"red"]`, Describe(noun))

	// Cycles are cut.
	require.NoError(t, noun.Append(noun, 2))
	assert.Contains(t, Describe(noun), "2:...")
}

func TestControls(t *testing.T) {
	kr := NewKRPosControl("NOUN")
	assert.Equal(t, "NOUN", kr.String())
	kr.KR["NUM"] = "PL"
	kr.KR["CAS"] = "ACC"
	assert.Equal(t, "NOUN[CAS=ACC,NUM=PL]", kr.String())

	avm := &AVM{
		Features: map[string]string{"agent": "dog"},
		Required: []string{"agent", "patient"},
	}
	assert.False(t, avm.Satisfied())
	avm.Features["patient"] = "cat"
	assert.True(t, avm.Satisfied())

	var c Control = &ConceptControl{}
	_, is := c.(Satisfier)
	assert.False(t, is)
}

func TestIdsAreUnique(t *testing.T) {
	a, b := NewConcept("a", 0), NewConcept("a", 0)
	assert.NotEqual(t, a.Id, b.Id)
}

func TestCopy(t *testing.T) {
	give := NewConcept("give", 2)
	acc := NewConcept("ACC", 0)
	require.NoError(t, give.Append(acc, 1))
	require.NoError(t, give.Append(acc, 2))
	require.NoError(t, give.Append("to", 2))
	require.NoError(t, give.Append(give, 2))

	c := give.Copy()
	assert.NotEqual(t, give.Id, c.Id)
	assert.Equal(t, Describe(give), Describe(c))

	// Shared substructure stays shared; nothing points back to the original.
	assert.Same(t, c.Children(1)[0], c.Children(2)[0])
	assert.NotSame(t, acc, c.Children(1)[0])
	assert.Same(t, c, c.Children(2)[1])

	require.NoError(t, c.Replace(1, 0, NewPos("dog", "NOUN")))
	assert.Same(t, acc, give.Children(1)[0])

	kr := NewKRPosControl("NOUN")
	kr.KR["NUM"] = "SG"
	n := NewMachine("dog", 1, kr)
	n.Copy().Control().(*KRPosControl).KR["NUM"] = "PL"
	assert.Equal(t, "SG", kr.KR["NUM"])
}

func TestDescribeIds(t *testing.T) {
	give := NewConcept("give", 1)
	dog := NewPos("dog", "NOUN")
	require.NoError(t, give.Append(dog, 1))
	c := give.Copy()

	// Same names, different machines.
	assert.Equal(t, Describe(give), Describe(c))
	assert.NotEqual(t, DescribeIds(give), DescribeIds(c))

	assert.Len(t, give.ShortId(), 8)
	assert.Equal(t, "give#"+give.ShortId(), give.Ref())
	assert.Equal(t, "give#"+give.ShortId()+"/CONCEPT[1:dog#"+dog.ShortId()+"/NOUN]", DescribeIds(give))
	assert.Equal(t, []string{give.Ref(), "nil"}, Refs([]*Machine{give, nil}))
}
