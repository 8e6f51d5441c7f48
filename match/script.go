package match

import (
	"context"
	"time"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/interpreters/goja"

	gj "github.com/dop251/goja"
)

// DefaultScriptTimeout bounds each evaluation of a ScriptMatcher.
var DefaultScriptTimeout = 100 * time.Millisecond

// ScriptMatcher evaluates an ECMAScript predicate.  The machine is
// available as the global "node" with these properties:
//
//	name:       the printname
//	control:    the control's String() ("" if none)
//	concept:    true if the control is a ConceptControl
//	arity:      number of argument partitions
//	partitions: printnames (or literals) in each partition
//
// Example: `node.concept && node.partitions[1].indexOf("IS_A") >= 0`
type ScriptMatcher struct {
	Source  interface{}
	Timeout time.Duration

	interpreter *goja.Interpreter
	program     *gj.Program
}

// NewScriptMatcher compiles the source (see goja.AsSource) with the
// given interpreter, which can be nil.
func NewScriptMatcher(ctx context.Context, i *goja.Interpreter, src interface{}) (*ScriptMatcher, error) {
	if i == nil {
		i = goja.NewInterpreter()
	}
	p, err := i.Compile(ctx, src)
	if err != nil {
		return nil, err
	}
	return &ScriptMatcher{
		Source:      src,
		Timeout:     DefaultScriptTimeout,
		interpreter: i,
		program:     p,
	}, nil
}

// NodeEnv is the representation of a machine given to scripts.
func NodeEnv(m *graph.Machine) map[string]interface{} {
	var control string
	if c := m.Control(); c != nil {
		control = c.String()
	}
	_, concept := m.Control().(*graph.ConceptControl)

	ps := make([]interface{}, len(m.Partitions()))
	for i, p := range m.Partitions() {
		names := make([]interface{}, len(p))
		for j, x := range p {
			switch vv := x.(type) {
			case *graph.Machine:
				names[j] = vv.PrintName()
			default:
				names[j] = vv
			}
		}
		ps[i] = names
	}

	return map[string]interface{}{
		"name":       m.PrintName(),
		"control":    control,
		"concept":    concept,
		"arity":      m.Arity(),
		"partitions": ps,
	}
}

func (sm *ScriptMatcher) test(m *graph.Machine) Result {
	ctx := context.Background()
	if 0 < sm.Timeout {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sm.Timeout)
		defer cancel()
	}
	ok, err := sm.interpreter.Test(ctx, map[string]interface{}{"node": NodeEnv(m)}, sm.program)
	if err != nil {
		return failed(err)
	}
	return boolResult(ok)
}

func (sm *ScriptMatcher) Match(m *graph.Machine) bool {
	return evaluate("script", m, sm.test)
}
