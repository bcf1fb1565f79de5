package resolve

import (
	"context"

	"github.com/spachava753/podkit/pod"
)

// maxRecordDepth bounds Record → Record recursion.
const maxRecordDepth = 8

// Lookup fetches one entity by a scalar key.
type Lookup[T any, K any] func(ctx context.Context, conn *pod.Connection, key K) (*T, error)

// Strategies configures a Resolver. A nil lookup means the resolver does not
// support that identifier variant; using it is an invalid-argument fault.
type Strategies[T any] struct {
	// Kind names the entity in errors and logs, for example "user".
	Kind string
	// RecordKey is the Record field that carries the identifier.
	RecordKey string

	Current    func(ctx context.Context, conn *pod.Connection) (*T, error)
	ByID       Lookup[T, int64]
	ByKey      Lookup[T, string]
	ByEmail    Lookup[T, string]
	ByUsername Lookup[T, string]
}

// Resolver turns an Identifier into a canonical *T.
//
// Resolve returns (nil, nil) when the identifier cannot be resolved: explicit
// nulls, records without an identifier, and not-found faults from a lookup.
// Every other fault is returned as-is.
type Resolver[T any] struct {
	s Strategies[T]
}

// New creates a Resolver from s.
func New[T any](s Strategies[T]) *Resolver[T] {
	if s.Kind == "" {
		s.Kind = "entity"
	}
	return &Resolver[T]{s: s}
}

// Kind returns the entity name the resolver was configured with.
func (r *Resolver[T]) Kind() string { return r.s.Kind }

// RecordKey returns the Record field the resolver reads identifiers from.
func (r *Resolver[T]) RecordKey() string { return r.s.RecordKey }

// Resolve resolves id against conn.
func (r *Resolver[T]) Resolve(ctx context.Context, conn *pod.Connection, id Identifier) (*T, error) {
	if conn == nil {
		return nil, pod.InvalidArgument("%s: connection is required", r.s.Kind)
	}
	return r.resolve(ctx, conn, id, 0)
}

func (r *Resolver[T]) resolve(ctx context.Context, conn *pod.Connection, id Identifier, depth int) (*T, error) {
	switch v := id.(type) {
	case nil, current:
		if r.s.Current == nil {
			return nil, r.unsupported(id)
		}
		return r.s.Current(ctx, conn)

	case Entity:
		return r.entity(v)

	case Record:
		if depth >= maxRecordDepth {
			return nil, pod.InvalidArgument("%s: record nesting exceeds %d levels", r.s.Kind, maxRecordDepth)
		}
		if r.s.RecordKey == "" {
			return nil, r.unsupported(id)
		}
		inner, err := v.Field(r.s.RecordKey)
		if err != nil {
			return nil, err
		}
		if IsCurrent(inner) {
			// A record never means "whoever is logged in".
			return nil, nil
		}
		return r.resolve(ctx, conn, inner, depth+1)

	case ID:
		return lookup(ctx, conn, r, r.s.ByID, int64(v), id)

	case Key:
		return lookup(ctx, conn, r, r.s.ByKey, string(v), id)

	case Email:
		return lookup(ctx, conn, r, r.s.ByEmail, string(v), id)

	case Username:
		return lookup(ctx, conn, r, r.s.ByUsername, string(v), id)

	case null:
		return nil, nil

	default:
		return nil, r.unsupported(id)
	}
}

func (r *Resolver[T]) entity(e Entity) (*T, error) {
	switch v := e.Value.(type) {
	case nil:
		return nil, nil
	case *T:
		return v, nil
	case T:
		return &v, nil
	default:
		return nil, pod.InvalidArgument("%s: cannot resolve %T", r.s.Kind, e.Value)
	}
}

func (r *Resolver[T]) unsupported(id Identifier) error {
	return pod.InvalidArgument("%s: cannot resolve by %s", r.s.Kind, Describe(id))
}

func lookup[T any, K any](ctx context.Context, conn *pod.Connection, r *Resolver[T], fn Lookup[T, K], key K, id Identifier) (*T, error) {
	if fn == nil {
		return nil, r.unsupported(id)
	}
	found, err := fn(ctx, conn, key)
	if err != nil {
		if pod.IsNotFound(err) {
			conn.Logger().Debug().
				Str("kind", r.s.Kind).
				Str("identifier", Describe(id)).
				Msg("identifier not found")
			return nil, nil
		}
		return nil, err
	}
	return found, nil
}
