package lexicon

import (
	"errors"
	"testing"

	"github.com/Comcast/cxg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExample(t *testing.T) {
	l, err := Example()
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())

	animal, have := l.Static("animal")
	require.True(t, have)
	assert.IsType(t, &graph.ConceptControl{}, animal.Control())
	require.Len(t, animal.Children(1), 2)
	isa := animal.Children(1)[0]
	assert.Equal(t, "IS_A", isa.PrintName())
	assert.Equal(t, "dog", isa.Children(1)[0].PrintName())

	give, _ := l.Static("give")
	assert.Equal(t, "VERB", give.Control().String())
	assert.Equal(t, []interface{}{give.Partition(2)[0], "thing"}, give.Partition(2))

	var names []string
	require.NoError(t, l.Each(func(name string, _ *graph.Machine) error {
		names = append(names, name)
		return nil
	}))
	assert.Equal(t, []string{"animal", "fox", "rose", "give"}, names)
}

func TestEachStops(t *testing.T) {
	l, err := Example()
	require.NoError(t, err)

	stop := errors.New("stop")
	n := 0
	err = l.Each(func(string, *graph.Machine) error {
		n++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, n)
}

func TestExpand(t *testing.T) {
	l, err := Example()
	require.NoError(t, err)

	give := graph.NewPos("give", "VERB")
	require.NoError(t, l.Expand(give))
	assert.Equal(t, 3, give.Arity())
	assert.Equal(t, "NOM", give.Children(1)[0].PrintName())
	assert.Equal(t, "DAT", give.Children(3)[0].PrintName())

	// The definition isn't shared.
	require.NoError(t, give.Replace(1, 0, graph.NewPos("dog", "NOUN")))
	def, _ := l.Static("give")
	assert.Equal(t, "NOM", def.Children(1)[0].PrintName())

	var unknown *UnknownWord
	assert.ErrorAs(t, l.Expand(graph.NewPos("zebra", "NOUN")), &unknown)
}

func TestEntrySpecErrors(t *testing.T) {
	_, err := (&EntrySpec{Pos: "NOUN"}).Machine()
	assert.Equal(t, MissingName, err)

	_, err = LoadYAML([]byte(`entries: [{name: x, partitions: [[], [{pos: ADJ}]]}]`))
	assert.Equal(t, MissingName, err)

	_, err = LoadYAML([]byte(`entries: {`))
	assert.Error(t, err)
}

func TestEntryControls(t *testing.T) {
	m, err := (&EntrySpec{Name: "dogs", Pos: "NOUN", KR: map[string]string{"NUM": "PL"}}).Machine()
	require.NoError(t, err)
	assert.Equal(t, "NOUN[NUM=PL]", m.Control().String())

	m, err = (&EntrySpec{Name: "dog"}).Machine()
	require.NoError(t, err)
	assert.Nil(t, m.Control())
}
