package lexicon

// ExampleYAML is a small lexicon that's useful to have around.
//
// "animal" lists two members through IS_A relations in its own
// definition, "fox" declares itself an animal, and "give" is a verb
// whose definition has NOM, ACC, and DAT case slots.
var ExampleYAML = `
doc: A tiny lexicon for examples and tests.
entries:
  - name: animal
    concept: true
    partitions:
      - []
      - - name: IS_A
          concept: true
          partitions: [[], [{name: dog}], [{name: animal}]]
        - name: IS_A
          concept: true
          partitions: [[], [{name: cat}], [{name: animal}]]
  - name: fox
    pos: NOUN
    partitions:
      - []
      - - name: IS_A
          concept: true
          partitions: [[], [{name: fox}], [{name: animal}]]
  - name: rose
    pos: NOUN
    partitions:
      - []
      - - name: IS_A
          concept: true
          partitions: [[], [{name: rose}], [{name: plant}]]
  - name: give
    pos: VERB
    partitions:
      - []
      - [{name: NOM, concept: true}]
      - [{name: ACC, concept: true}, {literal: thing}]
      - [{name: DAT, concept: true}]
`

// Example loads ExampleYAML.
func Example() (*Memory, error) {
	return LoadYAML([]byte(ExampleYAML))
}
