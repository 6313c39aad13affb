// Package store is the record store: a tree of JSON values scoped per owner
// under users/{owner}/{collection}, with push subscriptions on each
// collection node.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "spendwise/internal/errors"
)

// Collection names a node under an owner.
type Collection string

const (
	Incomes    Collection = "incomes"
	Expenses   Collection = "expenses"
	Categories Collection = "categories"
	Budget     Collection = "budget"
	Profile    Collection = "profile"
)

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	switch c {
	case Incomes, Expenses, Categories, Budget, Profile:
		return true
	}
	return false
}

// RawTree is a node snapshot: child key to JSON-compatible value.
type RawTree = map[string]any

// Unsubscribe releases a subscription. It is safe to call more than once
// and must not be called from inside the snapshot callback it releases.
type Unsubscribe func()

// Path addresses one collection node of one owner.
type Path struct {
	Owner      string
	Collection Collection
}

// PathOf builds a Path.
func PathOf(owner string, c Collection) Path {
	return Path{Owner: owner, Collection: c}
}

// String renders the path as users/{owner}/{collection}.
func (p Path) String() string {
	return "users/" + p.Owner + "/" + string(p.Collection)
}

// Validate rejects paths without an owner or with an unknown collection.
func (p Path) Validate() error {
	if strings.TrimSpace(p.Owner) == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "owner identity is required")
	}
	if strings.Contains(p.Owner, "/") {
		return apperrors.WithMessage(apperrors.ErrValidation, "owner identity must not contain '/'")
	}
	if !p.Collection.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("unknown collection %q", p.Collection))
	}
	return nil
}

// Store is the record store boundary.
//
// Mutations are last-write-wins. Subscribers see the effect of a mutation
// on their next snapshot, never synchronously with the mutation returning.
type Store interface {
	// Subscribe delivers the current snapshot of path, then a fresh
	// snapshot after each change, until the returned Unsubscribe is called
	// or ctx is done. Callbacks for one subscription never overlap.
	//
	// A failed read is passed to onError, which may be nil, as a StoreError
	// and retried with backoff; the subscription stays open.
	Subscribe(ctx context.Context, path Path, onSnapshot func(RawTree), onError func(error)) (Unsubscribe, error)
	// Append adds value as a new child and returns its store-assigned id.
	Append(ctx context.Context, path Path, value any) (string, error)
	// Replace overwrites the child id with value.
	Replace(ctx context.Context, path Path, id string, value any) error
	// Remove deletes the child id. Removing a missing child is a no-op.
	Remove(ctx context.Context, path Path, id string) error
	// Set overwrites the whole node.
	Set(ctx context.Context, path Path, tree RawTree) error
	// ReadOnce returns the current snapshot; an absent node is empty.
	ReadOnce(ctx context.Context, path Path) (RawTree, error)
}

func validateChild(p Path, id string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("invalid child id %q", id))
	}
	return nil
}

// normalize converts value to its JSON form so that every backend hands
// back the same shapes (objects as map[string]any, numbers as float64).
func normalize(value any) (any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "value is not JSON-encodable: "+err.Error())
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return out, nil
}

// clone deep-copies a normalized tree.
func clone(tree RawTree) RawTree {
	out := make(RawTree, len(tree))
	for k, v := range tree {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

func storeError(op string, p Path, err error) error {
	return apperrors.Wrap(apperrors.ErrStore, fmt.Errorf("%s %s: %w", op, p, err))
}
