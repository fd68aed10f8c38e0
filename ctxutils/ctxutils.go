package ctxutils

import (
	"context"
	"strings"
)

type contextKey int

const (
	operationsKey contextKey = iota
	runIDKey
)

// Operation names a processing step, e.g. "1.loader"
type Operation string

// Operations is a path of nested operations: outer first
type Operations struct {
	Path []Operation
}

func (o Operations) String() string {
	parts := make([]string, 0, len(o.Path))
	for _, op := range o.Path {
		parts = append(parts, string(op))
	}
	return strings.Join(parts, "/")
}

type ContextOption func(ctx context.Context) context.Context

// BuildContext applies opts to ctx (nil ctx -> context.Background())
func BuildContext(ctx context.Context, opts ...ContextOption) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, opt := range opts {
		ctx = opt(ctx)
	}
	return ctx
}

// SetContextOperation replaces current operation path with a single operation
func SetContextOperation(op Operation) ContextOption {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, operationsKey, Operations{[]Operation{op}})
	}
}

// AddContextOperation appends op to current operation path
func AddContextOperation(op Operation) ContextOption {
	return func(ctx context.Context) context.Context {
		ops := GetContextOperations(ctx)
		path := make([]Operation, len(ops.Path), len(ops.Path)+1)
		copy(path, ops.Path)
		return context.WithValue(ctx, operationsKey, Operations{append(path, op)})
	}
}

func SetContextRunID(runID string) ContextOption {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, runIDKey, runID)
	}
}

func GetContextOperations(ctx context.Context) Operations {
	if ctx == nil {
		return Operations{}
	}
	if ops, ok := ctx.Value(operationsKey).(Operations); ok {
		return ops
	}
	return Operations{}
}

func GetContextRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	runID, _ := ctx.Value(runIDKey).(string)
	return runID
}
