// Package rpc is a directory of named procedures. Each procedure is a query
// (read) or a mutation (write) with a declared input schema; the router adds
// no policy of its own.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"shuvoedward/Bible_reader/internal/schema"
)

var (
	ErrNotFound  = errors.New("procedure not found")
	ErrWrongKind = errors.New("procedure called with the wrong kind")
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

type HandlerFunc func(ctx context.Context, raw []byte) (any, error)

type Procedure struct {
	Name        string
	Kind        Kind
	Input       *schema.Schema
	Description string
	handler     HandlerFunc
}

// Describe sets a one-line description shown in the directory.
func (p *Procedure) Describe(description string) *Procedure {
	p.Description = description
	return p
}

// Query adapts a typed read to a procedure. Raw input is validated against
// input before it is decoded into In.
func Query[In, Out any](name string, input *schema.Schema, fn func(context.Context, In) (Out, error)) *Procedure {
	return newProcedure(name, KindQuery, input, fn)
}

// Mutation adapts a typed write to a procedure.
func Mutation[In, Out any](name string, input *schema.Schema, fn func(context.Context, In) (Out, error)) *Procedure {
	return newProcedure(name, KindMutation, input, fn)
}

func newProcedure[In, Out any](name string, kind Kind, input *schema.Schema, fn func(context.Context, In) (Out, error)) *Procedure {
	return &Procedure{
		Name:  name,
		Kind:  kind,
		Input: input,
		handler: func(ctx context.Context, raw []byte) (any, error) {
			if len(strings.TrimSpace(string(raw))) == 0 {
				raw = []byte("{}")
			}

			in, err := schema.Decode[In](input, raw)
			if err != nil {
				return nil, err
			}

			return fn(ctx, in)
		},
	}
}

type Router struct {
	procedures map[string]*Procedure
}

func New() *Router {
	return &Router{procedures: make(map[string]*Procedure)}
}

// Register adds procedures under namespace. A duplicate full name panics,
// registration happens once at startup.
func (r *Router) Register(namespace string, procedures ...*Procedure) {
	for _, p := range procedures {
		full := namespace + "." + p.Name
		if _, exists := r.procedures[full]; exists {
			panic(fmt.Sprintf("rpc: procedure %q registered twice", full))
		}
		r.procedures[full] = p
	}
}

func (r *Router) Lookup(name string) (*Procedure, error) {
	p, ok := r.procedures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// Call dispatches raw input to the named procedure, which must be of kind.
func (r *Router) Call(ctx context.Context, name string, kind Kind, raw []byte) (any, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	if p.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongKind, name, p.Kind)
	}

	return p.handler(ctx, raw)
}

type Entry struct {
	Name        string         `json:"name"`
	Kind        Kind           `json:"kind"`
	Description string         `json:"description,omitempty"`
	Input       map[string]any `json:"input"`
}

// Directory lists every procedure sorted by name.
func (r *Router) Directory() []Entry {
	entries := make([]Entry, 0, len(r.procedures))
	for name, p := range r.procedures {
		entries = append(entries, Entry{
			Name:        name,
			Kind:        p.Kind,
			Description: p.Description,
			Input:       p.Input.Describe(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries
}
