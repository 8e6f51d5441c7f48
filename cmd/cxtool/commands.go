package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/Comcast/cxg/construction"
	"github.com/Comcast/cxg/core"
	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/interpreters/goja"
	"github.com/Comcast/cxg/lexicon"
	"github.com/Comcast/cxg/lexicon/bolt"
	"github.com/Comcast/cxg/match"
	"github.com/Comcast/cxg/operators"
	"github.com/Comcast/cxg/tools"

	"github.com/jsccast/yaml"
)

var Commands = map[string]Command{
	"hypercube": &Hypercuber{},
	"analyze":   &Analyzer{},
	"dot":       &Grapher{},
	"mermaid":   &Mermaider{},
	"html":      &Pager{},
	"expect":    &Expecter{},
	"demo":      &Demo{},
	"lexicon":   &Lexiconer{},
	"match":     &Matcher{},
}

var NoCases = errors.New("no cases given")

type Command interface {
	Doc() string
	Flags() *flag.FlagSet
	Run(args []string, in io.Reader, out io.Writer) error
}

// nopCloser lets the tools close the output without closing stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// describer picks how machines are printed.
func describer(ids bool) func(*graph.Machine) string {
	if ids {
		return graph.DescribeIds
	}
	return graph.Describe
}

// readSpec reads an FSASpec from the file or, if there's no file,
// from in.
func readSpec(filename string, in io.Reader) (*core.FSASpec, error) {
	if filename != "" {
		return tools.ReadFSASpec(filename)
	}
	bs, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return core.ParseFSASpec(bs)
}

type Hypercuber struct {
	Name  string
	Cases string
	Start int
}

func (c *Hypercuber) Doc() string {
	return `
Writes the hypercube acceptor for the given comma-separated cases as YAML.
Use -start 0 for an acceptor that accepts every ordering of the cases.
`
}

func (c *Hypercuber) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("hypercube", flag.PanicOnError)

	flags.StringVar(&c.Name, "n", "hypercube", "name")
	flags.StringVar(&c.Cases, "c", "", "comma-separated cases")
	flags.IntVar(&c.Start, "start", construction.HypercubeStart, "starting bitmask")

	return flags
}

func (c *Hypercuber) Run(args []string, in io.Reader, out io.Writer) error {
	if c.Cases == "" {
		return NoCases
	}
	f, err := construction.HypercubeFrom(c.Name, strings.Split(c.Cases, ","), c.Start)
	if err != nil {
		return err
	}
	spec := f.Spec()
	spec.Doc = fmt.Sprintf("Hypercube for %s starting at %d.", c.Cases, c.Start)
	bs, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	_, err = out.Write(bs)
	return err
}

type Analyzer struct {
	Filename string
}

func (c *Analyzer) Doc() string {
	return `
Analyzes an acceptor (from -f or stdin) and writes a YAML report.
`
}

func (c *Analyzer) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("analyze", flag.PanicOnError)
	flags.StringVar(&c.Filename, "f", "", "acceptor filename")
	return flags
}

func (c *Analyzer) Run(args []string, in io.Reader, out io.Writer) error {
	spec, err := readSpec(c.Filename, in)
	if err != nil {
		return err
	}
	a, err := tools.Analyze(spec)
	if err != nil {
		return err
	}
	return tools.WriteAnalysis(a, out)
}

type Grapher struct {
	Filename  string
	FromState string
	ToState   string
}

func (c *Grapher) Doc() string {
	return `
Writes a Graphviz dot file for an acceptor (from -f or stdin).
`
}

func (c *Grapher) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("dot", flag.PanicOnError)
	flags.StringVar(&c.Filename, "f", "", "acceptor filename")
	flags.StringVar(&c.FromState, "from", "", "optional from state")
	flags.StringVar(&c.ToState, "to", "", "optional to state")
	return flags
}

func (c *Grapher) Run(args []string, in io.Reader, out io.Writer) error {
	spec, err := readSpec(c.Filename, in)
	if err != nil {
		return err
	}
	return tools.Dot(spec, nopCloser{out}, c.FromState, c.ToState)
}

type Mermaider struct {
	Grapher
}

func (c *Mermaider) Doc() string {
	return `
Writes Mermaid input for an acceptor (from -f or stdin).
`
}

func (c *Mermaider) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("mermaid", flag.PanicOnError)
	flags.StringVar(&c.Filename, "f", "", "acceptor filename")
	flags.StringVar(&c.FromState, "from", "", "optional from state")
	flags.StringVar(&c.ToState, "to", "", "optional to state")
	return flags
}

func (c *Mermaider) Run(args []string, in io.Reader, out io.Writer) error {
	spec, err := readSpec(c.Filename, in)
	if err != nil {
		return err
	}
	return tools.Mermaid(spec, nopCloser{out}, nil, c.FromState, c.ToState)
}

type Pager struct {
	Filename string
	CSS      string
	Graph    bool
}

func (c *Pager) Doc() string {
	return `
Writes an HTML page documenting an acceptor (from -f or stdin).
`
}

func (c *Pager) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("html", flag.PanicOnError)
	flags.StringVar(&c.Filename, "f", "", "acceptor filename")
	flags.StringVar(&c.CSS, "css", "", "comma-separated CSS files")
	flags.BoolVar(&c.Graph, "g", false, "include graph")
	return flags
}

func (c *Pager) Run(args []string, in io.Reader, out io.Writer) error {
	spec, err := readSpec(c.Filename, in)
	if err != nil {
		return err
	}
	if _, err = spec.Compile(); err != nil {
		return err
	}
	var css []string
	if c.CSS != "" {
		css = strings.Split(c.CSS, ",")
	}
	return tools.RenderSpecPage(spec, out, css, c.Graph)
}

type Expecter struct {
	Filename string
	Verbose  bool
}

func (c *Expecter) Doc() string {
	return `
Runs an expectation session (from -f or stdin) against its acceptor.
`
}

func (c *Expecter) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("expect", flag.PanicOnError)
	flags.StringVar(&c.Filename, "f", "", "session filename")
	flags.BoolVar(&c.Verbose, "v", false, "verbose")
	return flags
}

func (c *Expecter) Run(args []string, in io.Reader, out io.Writer) error {
	var (
		s   *tools.Session
		err error
	)
	if c.Filename != "" {
		s, err = tools.ReadSession(c.Filename)
	} else {
		var bs []byte
		if bs, err = ioutil.ReadAll(in); err == nil {
			s, err = tools.ParseSession(bs)
		}
	}
	if err != nil {
		return err
	}
	s.Verbose = s.Verbose || c.Verbose
	if err = s.Run(nil); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d cases passed\n", len(s.Cases))
	return nil
}

type Demo struct {
	Words string
	Ids   bool
}

func (c *Demo) Doc() string {
	return `
Runs DummyNPConstruction then TheConstruction over the words, and then
links an expanded "give" with three arguments.
`
}

func (c *Demo) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("demo", flag.PanicOnError)
	flags.StringVar(&c.Words, "w", "the kek/ADJ kockat/NOUN<CAS<ACC>>", "words as name/POS")
	flags.BoolVar(&c.Ids, "ids", false, "show machine ids")
	return flags
}

func (c *Demo) Run(args []string, in io.Reader, out io.Writer) error {
	describe := describer(c.Ids)

	np, err := construction.NewDummyNPConstruction()
	if err != nil {
		return err
	}
	the, err := construction.NewTheConstruction()
	if err != nil {
		return err
	}

	seq := graph.NewWords(strings.Fields(c.Words)...)
	if len(seq) < 2 {
		return fmt.Errorf("need at least two words, not %d", len(seq))
	}

	nps, ok, err := np.Run(seq[1:])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "%s: no match\n", np.Name())
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", np.Name(), describe(nps[0]))

	res, ok, err := the.Run(append(seq[:1:1], nps...))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "%s: no match\n", the.Name())
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", the.Name(), describe(res[0]))

	// Expand "give" into the working area and link its arguments.
	lex, err := lexicon.Example()
	if err != nil {
		return err
	}
	var wa operators.WorkingArea
	if _, err = (&operators.ExpandOperator{Lexicon: lex}).Act(graph.NewWords("give/VERB"), &wa); err != nil {
		return err
	}
	verb, err := construction.NewVerbConstructionFrom("give", wa.Get(), 0)
	if err != nil {
		return err
	}
	verbArgs := graph.NewWords("mary/NOUN<CAS<DAT>>", "john/NOUN<CAS<NOM>>")
	verbArgs = append(verbArgs, res[0])
	linked, ok, err := verb.Run(verbArgs)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "%s: no match\n", verb.Name())
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", verb.Name(), describe(linked[0]))
	return nil
}

type Lexiconer struct {
	DB    string
	Load  string
	Enum  string
	Get   string
	Ids   bool
	Debug bool
}

func (c *Lexiconer) Doc() string {
	return `
Loads lexicon YAML into a bbolt database, lists a category's members, or
shows an entry.  Without -db, the example lexicon is used.
`
}

func (c *Lexiconer) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("lexicon", flag.PanicOnError)
	flags.StringVar(&c.DB, "db", "", "bbolt database filename")
	flags.StringVar(&c.Load, "load", "", "lexicon YAML to load into the database")
	flags.StringVar(&c.Enum, "enum", "", "category whose members to list")
	flags.StringVar(&c.Get, "get", "", "entry to show")
	flags.BoolVar(&c.Ids, "ids", false, "show machine ids")
	flags.BoolVar(&c.Debug, "d", false, "debug the store")
	return flags
}

func (c *Lexiconer) Run(args []string, in io.Reader, out io.Writer) error {
	ctx := context.Background()

	var lex lexicon.Lexicon
	if c.DB == "" {
		if c.Load != "" {
			return errors.New("-load needs -db")
		}
		l, err := lexicon.Example()
		if err != nil {
			return err
		}
		lex = l
	} else {
		s := bolt.NewStore(c.DB)
		s.Debug = c.Debug
		if err := s.Open(); err != nil {
			return err
		}
		defer s.Close()

		if c.Load != "" {
			bs, err := ioutil.ReadFile(c.Load)
			if err != nil {
				return err
			}
			spec, err := lexicon.ParseSpec(bs)
			if err != nil {
				return err
			}
			if err = s.Load(ctx, spec); err != nil {
				return err
			}
			fmt.Fprintf(out, "loaded %d entries\n", len(spec.Entries))
		}
		lex = s
	}

	if c.Get != "" {
		m, have := lex.Static(c.Get)
		if !have {
			return &lexicon.UnknownWord{Name: c.Get}
		}
		fmt.Fprintln(out, describer(c.Ids)(m))
	}

	if c.Enum != "" {
		em, err := match.NewEnumMatcher(c.Enum, lex)
		if err != nil {
			return err
		}
		for _, name := range em.Members() {
			fmt.Fprintln(out, name)
		}
	}

	return nil
}

type Matcher struct {
	Printname string
	Pos       string
	Exact     bool
	File      string
	JS        string
	Not       bool
}

func (c *Matcher) Doc() string {
	return `
Tests words (name/POS arguments after the flags) against the AND of the given matchers.
`
}

func (c *Matcher) Flags() *flag.FlagSet {
	flags := flag.NewFlagSet("match", flag.PanicOnError)
	flags.StringVar(&c.Printname, "p", "", "printname pattern")
	flags.StringVar(&c.Pos, "pos", "", "part-of-speech pattern")
	flags.BoolVar(&c.Exact, "x", false, "patterns must match exactly")
	flags.StringVar(&c.File, "file", "", "file of words, one per line")
	flags.StringVar(&c.JS, "js", "", "ECMAScript predicate over 'node'")
	flags.BoolVar(&c.Not, "not", false, "negate the result")
	return flags
}

// matcher builds the conjunction of the configured matchers.
func (c *Matcher) matcher() (match.Matcher, error) {
	var ms []match.Matcher
	if c.Printname != "" {
		m, err := match.NewPrintnameMatcher(c.Printname, c.Exact)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if c.Pos != "" {
		m, err := match.NewPosControlMatcher(c.Pos, c.Exact)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if c.File != "" {
		m, err := match.NewFileContainsMatcher(c.File)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if c.JS != "" {
		m, err := match.NewScriptMatcher(context.Background(), goja.NewInterpreter(), c.JS)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	var m match.Matcher = match.And(ms...)
	if c.Not {
		m = match.Not(m)
	}
	return m, nil
}

func (c *Matcher) Run(args []string, in io.Reader, out io.Writer) error {
	m, err := c.matcher()
	if err != nil {
		return err
	}
	for _, w := range graph.NewWords(args...) {
		fmt.Fprintf(out, "%s/%s %v\n", w.PrintName(), w.Control(), m.Match(w))
	}
	return nil
}
