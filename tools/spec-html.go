package tools

import (
	"encoding/json"
	"fmt"
	"html"
	"io"

	"github.com/Comcast/cxg/core"

	md "github.com/russross/blackfriday/v2"
)

// RenderSpecHTML writes an HTML fragment documenting the acceptor.
// Docs are rendered as Markdown.
func RenderSpecHTML(s *core.FSASpec, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="specDoc doc">%s</div>`, md.Run([]byte(s.Doc)))

	byFrom := make(map[string][]*core.Transition)
	for _, t := range s.Transitions {
		if t != nil {
			byFrom[t.From] = append(byFrom[t.From], t)
		}
	}

	{ // States in the order given
		f(`<div class="states"><table>`)
		for _, st := range s.States {
			if st == nil {
				continue
			}
			id := html.EscapeString(st.Id)
			class := "state"
			if st.Initial {
				class += " initial"
			}
			if st.Final {
				class += " final"
			}
			f(`<tr class="%s"><td><span id="%s" class="stateName">%s</span></td><td>`, class, id, id)
			if ts := byFrom[st.Id]; 0 < len(ts) {
				f(`<div class="transitions">`)
				f(`<table>`)
				for i, t := range ts {
					f(`<tr><td><div class="transitionNum">%d</div></td>`, i)
					f(`<td><code>%s</code></td>`, html.EscapeString(t.Pattern))
					to := html.EscapeString(t.To)
					f(`<td><a href="#%s"><code>%s</code></a></td></tr>`, to, to)
				}
				f(`</table>`)
				f(`</div>`)
			}
			f(`</td></tr>`)
		}
		f(`</table></div>`)
	}

	return nil
}

// RenderSpecPage writes a complete HTML page for the acceptor.
func RenderSpecPage(s *core.FSASpec, out io.Writer, cssFiles []string, includeGraph bool) error {

	if cssFiles == nil {
		cssFiles = []string{"/static/spec-html.css"}
	}

	js, err := json.Marshal(s)
	if err != nil {
		return err
	}

	name := html.EscapeString(s.Name)

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, name)

	if includeGraph {
		fmt.Fprintf(out, `
  <script src="https://cdnjs.cloudflare.com/ajax/libs/cytoscape/3.2.8/cytoscape.min.js"></script>
  <script src="/static/spec-html.js"></script>
  <script>
  var thisSpec = %s;
  </script>
`, js)
	}

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>%s</h1>
`, name)

	if includeGraph {
		fmt.Fprintf(out, `<div id="graph"></div>`)
	}

	if err = RenderSpecHTML(s, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}

// ReadAndRenderSpecPage reads an FSASpec (YAML or JSON, with inlines),
// makes sure it compiles, and renders it.
func ReadAndRenderSpecPage(filename string, cssFiles []string, out io.Writer, includeGraph bool) error {
	spec, err := ReadFSASpec(filename)
	if err != nil {
		return err
	}
	if _, err = spec.Compile(); err != nil {
		return err
	}
	return RenderSpecPage(spec, out, cssFiles, includeGraph)
}
