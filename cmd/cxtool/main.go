// Package main is a command-line utility for acceptors, constructions,
// matchers, and lexicons.
//
//	cxtool hypercube -c NOM,ACC,DAT -start 0 | cxtool analyze
//	cxtool dot -f np.yaml | dot -Tpng > np.png
//	cxtool demo
//	cxtool lexicon -db lex.db -load lexicon.yaml -enum animal
//	cxtool match -js 'node.name.length > 3' kockat/NOUN kek/ADJ
//
// Set CXG_DEBUG to see debug logging.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
)

func main() {

	if len(os.Args) < 2 {
		Usage(os.Stdout)
		os.Exit(1)
	}

	cmd, have := Commands[os.Args[1]]
	if !have {
		fmt.Fprintf(os.Stderr, "Unknown subcommand \"%s\"\n", os.Args[1])
		Usage(os.Stderr)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if err := flags.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Run(flags.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func Usage(w io.Writer) {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "Subcommands:\n\n")
	for _, name := range names {
		cmd := Commands[name]
		flags := cmd.Flags()
		flags.SetOutput(w)
		flags.Usage()
		fmt.Fprintln(w, "  "+cmd.Doc())
		fmt.Fprintln(w)
	}
}
