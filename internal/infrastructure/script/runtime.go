// Package script runs the embedded browser theme script against Go ports.
package script

import (
	"context"
	"fmt"

	"github.com/grafana/sobek"

	"github.com/bnema/themeroot/assets"
	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

const scriptName = "theme.js"

// Runtime executes a compiled theme script. A Runtime is safe for
// concurrent use; each Run gets a fresh VM.
type Runtime struct {
	program *sobek.Program
	source  string
}

// New compiles the embedded theme script.
func New() (*Runtime, error) {
	return Compile(assets.ThemeScript)
}

// Compile compiles src as a theme script.
func Compile(src string) (*Runtime, error) {
	program, err := sobek.Compile(scriptName, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", scriptName, err)
	}
	return &Runtime{program: program, source: src}, nil
}

// Source returns the script text.
func (r *Runtime) Source() string {
	return r.source
}

// Run executes the script once with localStorage, window.matchMedia and
// document.documentElement bound to store, query and root. Nil store or
// query behave as empty storage and an unsupported media query.
func (r *Runtime) Run(ctx context.Context, store port.PreferenceStore, query port.AppearanceQuery, root port.RootTokens) error {
	if root == nil {
		return fmt.Errorf("run %s: root is nil", scriptName)
	}

	vm := sobek.New()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	b := &bindings{ctx: ctx, vm: vm, store: store, query: query, root: root}
	if err := b.install(); err != nil {
		return fmt.Errorf("bind %s globals: %w", scriptName, err)
	}

	if _, err := vm.RunProgram(r.program); err != nil {
		return fmt.Errorf("run %s: %w", scriptName, err)
	}

	logging.FromContext(ctx).Debug().
		Str("root", root.Tokens().String()).
		Msg("theme script executed")
	return nil
}

type bindings struct {
	ctx   context.Context
	vm    *sobek.Runtime
	store port.PreferenceStore
	query port.AppearanceQuery
	root  port.RootTokens
}

func (b *bindings) install() error {
	if err := b.vm.Set("localStorage", b.vm.NewDynamicObject(&localStorage{b: b})); err != nil {
		return err
	}

	window := b.vm.NewObject()
	if err := window.Set("matchMedia", b.matchMedia); err != nil {
		return err
	}
	if err := b.vm.Set("window", window); err != nil {
		return err
	}

	documentElement, err := b.documentElement()
	if err != nil {
		return err
	}
	document := b.vm.NewObject()
	if err := document.Set("documentElement", documentElement); err != nil {
		return err
	}
	return b.vm.Set("document", document)
}

func (b *bindings) matchMedia(call sobek.FunctionCall) sobek.Value {
	q := call.Argument(0).String()
	matches := b.query != nil && b.query.Matches(b.ctx, q)

	result := b.vm.NewObject()
	_ = result.Set("media", q)
	_ = result.Set("matches", matches)
	return result
}

func (b *bindings) documentElement() (*sobek.Object, error) {
	el := b.vm.NewObject()

	getter := b.vm.ToValue(func(sobek.FunctionCall) sobek.Value {
		return b.vm.ToValue(b.root.Tokens().String())
	})
	setter := b.vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
		b.root.SetTokens(entity.ParseTokenList(call.Argument(0).String()))
		return sobek.Undefined()
	})
	if err := el.DefineAccessorProperty("className", getter, setter, sobek.FLAG_TRUE, sobek.FLAG_TRUE); err != nil {
		return nil, err
	}

	classList := b.vm.NewObject()
	if err := classList.Set("contains", func(call sobek.FunctionCall) sobek.Value {
		return b.vm.ToValue(b.root.Tokens().Contains(call.Argument(0).String()))
	}); err != nil {
		return nil, err
	}
	if err := classList.Set("add", func(call sobek.FunctionCall) sobek.Value {
		tokens := b.root.Tokens()
		for _, arg := range call.Arguments {
			name := arg.String()
			if tokens.Contains(name) {
				continue
			}
			tokens = append(tokens, name)
		}
		b.root.SetTokens(tokens)
		return sobek.Undefined()
	}); err != nil {
		return nil, err
	}
	if err := classList.Set("remove", func(call sobek.FunctionCall) sobek.Value {
		tokens := b.root.Tokens()
		before := len(tokens)
		for _, arg := range call.Arguments {
			tokens = tokens.Remove(arg.String())
		}
		if len(tokens) != before {
			b.root.SetTokens(tokens)
		}
		return sobek.Undefined()
	}); err != nil {
		return nil, err
	}
	if err := el.Set("classList", classList); err != nil {
		return nil, err
	}
	return el, nil
}
