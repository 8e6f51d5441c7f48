package match

import (
	"io/ioutil"
	"strings"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/util"
)

// FileContainsMatcher matches machines whose printname appears in a
// file with one entry per line.  Entries and printnames are compared
// after trimming whitespace and lower-casing.
type FileContainsMatcher struct {
	Filename string
	strs     map[string]bool
}

// Normalize is how FileContainsMatcher compares strings.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewFileContainsMatcher reads the file once.  Blank lines are
// ignored.
func NewFileContainsMatcher(filename string) (*FileContainsMatcher, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	strs := make(map[string]bool)
	for _, line := range strings.Split(string(bs), "\n") {
		if s := Normalize(line); s != "" {
			strs[s] = true
		}
	}
	return &FileContainsMatcher{
		Filename: filename,
		strs:     strs,
	}, nil
}

// Len returns the number of distinct entries.
func (fm *FileContainsMatcher) Len() int {
	return len(fm.strs)
}

func (fm *FileContainsMatcher) Match(m *graph.Machine) bool {
	return evaluate("file "+fm.Filename, m, func(m *graph.Machine) Result {
		ok := fm.strs[Normalize(m.String())]
		util.Logf("matching of %s in file %s is %v", m.Ref(), fm.Filename, ok)
		return boolResult(ok)
	})
}
