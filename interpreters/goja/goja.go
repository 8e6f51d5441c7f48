// Package goja compiles and runs ECMAScript predicates over machines
// using Goja, which is a Go implementation of ECMAScript 5.1+.
//
// See https://github.com/dop251/goja.
package goja

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"
)

var (
	// InterruptedMessage is the string value of Interrupted.
	InterruptedMessage = "RuntimeError: timeout"

	// Interrupted is returned by Exec if the execution is
	// interrupted.
	Interrupted = errors.New(InterruptedMessage)
)

// Interpreter compiles predicate source and executes the result.
type Interpreter struct {
	// LibraryProvider resolves names given in a source's
	// "requires".  If nil, DefaultLibraryProvider is used.
	LibraryProvider func(ctx context.Context, i *Interpreter, libraryName string) (string, error)
}

// NewInterpreter makes a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// ProvideLibrary resolves the library name into source code.
func (i *Interpreter) ProvideLibrary(ctx context.Context, name string) (string, error) {
	if i.LibraryProvider != nil {
		return i.LibraryProvider(ctx, i, name)
	}
	return DefaultLibraryProvider(ctx, i, name)
}

var DefaultLibraryProvider = MakeFileLibraryProvider(".")

// MakeFileLibraryProvider returns a provider that reads names of the
// form "file://NAME" relative to the given directory.
func MakeFileLibraryProvider(dir string) func(context.Context, *Interpreter, string) (string, error) {
	return func(ctx context.Context, i *Interpreter, name string) (string, error) {
		parts := strings.SplitN(name, "://", 2)
		if 2 != len(parts) {
			return "", fmt.Errorf("bad link '%s'", name)
		}
		if parts[0] != "file" {
			return "", fmt.Errorf("unknown protocol '%s'", parts[0])
		}
		if strings.Contains(parts[1], "..") {
			return "", fmt.Errorf("bad library path '%s'", parts[1])
		}
		bs, err := ioutil.ReadFile(filepath.Join(dir, parts[1]))
		if err != nil {
			return "", err
		}
		return string(bs), nil
	}
}

func MakeMapLibraryProvider(srcs map[string]string) func(context.Context, *Interpreter, string) (string, error) {
	return func(ctx context.Context, i *Interpreter, name string) (string, error) {
		src, have := srcs[name]
		if !have {
			return "", fmt.Errorf("undefined library '%s'", name)
		}
		return src, nil
	}
}

// wrapSrc makes a function body out of the code.  Code without a
// "return" is taken to be an expression.
func wrapSrc(src string) string {
	if !strings.Contains(src, "return") {
		src = "return (" + src + ");"
	}
	return fmt.Sprintf("(function() {\n%s\n}());\n", src)
}

// AsSource finds the code and the required libraries in a source,
// which is either a string or a map with "code" and "requires".
//
// Maps with interface{} keys (from some YAML parsers) are also
// accepted.
func AsSource(src interface{}) (code string, libs []string, err error) {
	var m map[string]interface{}
	switch vv := src.(type) {
	case string:
		return vv, nil, nil
	case map[interface{}]interface{}:
		m = make(map[string]interface{}, len(vv))
		for k, v := range vv {
			s, is := k.(string)
			if !is {
				return "", nil, fmt.Errorf("bad src key (%T)", k)
			}
			m[s] = v
		}
	case map[string]interface{}:
		m = vv
	default:
		return "", nil, fmt.Errorf("bad Goja source (%T)", src)
	}

	s, is := m["code"].(string)
	if !is {
		return "", nil, errors.New("bad Goja predicate code")
	}
	code = s

	switch vv := m["requires"].(type) {
	case nil:
	case string:
		libs = []string{vv}
	case []string:
		libs = vv
	case []interface{}:
		libs = make([]string, 0, len(vv))
		for _, x := range vv {
			s, is := x.(string)
			if !is {
				return "", nil, errors.New("bad library")
			}
			libs = append(libs, s)
		}
	default:
		return "", nil, errors.New("bad requires")
	}
	return code, libs, nil
}

// Compile prepends any required libraries and compiles the result.
//
// This method can block if the LibraryProvider blocks.
func (i *Interpreter) Compile(ctx context.Context, src interface{}) (*goja.Program, error) {
	code, libs, err := AsSource(src)
	if err != nil {
		return nil, err
	}

	code = wrapSrc(code)

	var libsSrc string
	for _, lib := range libs {
		libSrc, err := i.ProvideLibrary(ctx, lib)
		if err != nil {
			return nil, err
		}
		libsSrc += libSrc + "\n"
	}
	code = libsSrc + code

	p, err := goja.Compile("", code, true)
	if err != nil {
		return nil, errors.New(err.Error() + ": " + code)
	}
	return p, nil
}

// Exec runs the compiled program and returns the exported value.
//
// The runtime has these globals:
//
//	_:        the given env
//	log(x):   log the JSON representation of x
//
// Each key of env is also bound as a global, so a predicate can say
// node.name rather than _.node.name.
//
// Execution is interrupted when ctx is done.
func (i *Interpreter) Exec(ctx context.Context, env map[string]interface{}, p *goja.Program) (interface{}, error) {
	if p == nil {
		return nil, errors.New("nil Goja program")
	}

	o := goja.New()
	if env == nil {
		env = map[string]interface{}{}
	}
	o.Set("_", env)
	for k, v := range env {
		o.Set(k, v)
	}

	o.Set("log", func(x interface{}) interface{} {
		if v, is := x.(goja.Value); is {
			x = v.Export()
		}
		js, err := json.Marshal(&x)
		if err != nil {
			log.Println("goja.log (can't marshal: " + err.Error() + ")")
		} else {
			log.Println(string(js))
		}
		return x
	})

	// We want to make sure that the following goroutine is
	// terminated as soon as possible.
	ictx, cancel := context.WithCancel(ctx)
	go func() {
		<-ictx.Done()
		// If cancel() is called after RunProgram returns, the
		// interrupt is harmless.
		o.Interrupt(InterruptedMessage)
	}()

	v, err := o.RunProgram(p)
	cancel()

	if err != nil {
		var ie *goja.InterruptedError
		if errors.As(err, &ie) {
			return nil, Interrupted
		}
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.Export(), nil
}

// Test runs a predicate.  The result must be a boolean.
func (i *Interpreter) Test(ctx context.Context, env map[string]interface{}, p *goja.Program) (bool, error) {
	x, err := i.Exec(ctx, env, p)
	if err != nil {
		return false, err
	}
	b, is := x.(bool)
	if !is {
		return false, fmt.Errorf("predicate returned %#v (%T), not a boolean", x, x)
	}
	return b, nil
}
