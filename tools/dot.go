package tools

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	. "github.com/Comcast/cxg/core"
)

// Dot makes a Graphviz dot file for the given acceptor.
//
// The optional fromState and toState can be the ids of states during a
// transition.  If non-zero, then the transition will be red, and so
// will the toState.
func Dot(spec *FSASpec, w io.WriteCloser, fromState, toState string) error {

	log.Printf("processing %d states", len(spec.States))

	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [ordering=out,rankdir=LR,nodesep=0.3,ranksep=0.6]
  node [shape="circle" style="rounded,filled"]
  edge [fontsize = "12"]
`)

	if spec.Doc != "" {
		doc := spec.Doc
		if 40 < len(doc) {
			period := strings.Index(doc, ". ")
			if 0 < period {
				doc = doc[0 : period+1]
			}
		}
		fmt.Fprintf(w, "  labelloc=\"t\"\n  label=<%s<BR/><FONT POINT-SIZE='8'>%s</FONT>>\n",
			htmlEscape(spec.Name), htmlEscape(doc))
	}

	defined := make(map[string]bool, len(spec.States))
	for _, s := range spec.States {
		if s == nil {
			continue
		}
		defined[s.Id] = true

		fillcolor := "#99ddc8"
		color := "black"
		shape := "circle"
		style := "filled"
		if s.Final {
			shape = "doublecircle"
			fillcolor = "#52aa5e"
		}
		if s.Initial {
			style += ",bold"
			fillcolor = "#2d93ad"
		}
		if toState == s.Id {
			color = "red"
			fillcolor = "#f98b8b"
		}
		fmt.Fprintf(w, "  %s [shape=\"%s\", style=\"%s\", color=\"%s\", fillcolor=\"%s\", label=<%s> ]\n",
			quote(s.Id), shape, style, color, fillcolor, htmlEscape(s.Id))
	}

	counts := make(map[string]int)
	for _, t := range spec.Transitions {
		if t != nil {
			counts[t.From]++
		}
	}

	nth := make(map[string]int)
	for _, t := range spec.Transitions {
		if t == nil {
			continue
		}
		for _, id := range []string{t.From, t.To} {
			if !defined[id] {
				log.Printf("transition refers to unknown state %s", id)
				defined[id] = true
				fmt.Fprintf(w, "  %s [style=\"dashed\", label=<%s> ]\n", quote(id), htmlEscape(id))
			}
		}
		nth[t.From]++

		color := "black"
		if fromState == t.From && toState == t.To {
			color = "red"
		}
		label := fmt.Sprintf("%d/%d %s", nth[t.From], counts[t.From], htmlEscape(t.Pattern))
		fmt.Fprintf(w, "  %s -> %s [ color=\"%s\" label = <%s> ]\n",
			quote(t.From), quote(t.To), color, label)
	}

	fmt.Fprintf(w, "}\n")
	return w.Close()
}

// PNG generates a PNG image based on output from Dot.
//
// This function with write two files: basename.dot and basename.png,
// where the basename is the given string.
func PNG(spec *FSASpec, basename string, fromState, toState string) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(spec, dotfile, fromState, toState); err != nil {
		return pngname, err
	}
	cmd := "dot -Tpng -Gstart=1 " + dotname + " > " + pngname
	if err := exec.Command("bash", "-c", cmd).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

func quote(s string) string {
	return `"` + strings.Replace(s, `"`, `\"`, -1) + `"`
}

func htmlEscape(s string) string {
	s = strings.Replace(s, "&", `&amp;`, -1)
	s = strings.Replace(s, "<", `&lt;`, -1)
	s = strings.Replace(s, ">", `&gt;`, -1)
	return s
}
