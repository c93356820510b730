package domain

import (
	"bytes"
	"encoding/json"
)

// Entity is implemented by every persisted model.
type Entity interface {
	EntityID() int64
}

// Reference points from an association row to the root row it depends on.
type Reference struct {
	Field  string
	Entity string
	Model  any
	ID     int64
}

// Referrer is implemented by association rows whose references must
// resolve before they are written.
type Referrer interface {
	References() []Reference
}

// Deduplicator returns the column values that identify the same favorite.
type Deduplicator interface {
	DuplicateScope() map[string]any
}

// Optional is a patch field. Set reports whether the key was present in the
// payload at all; Null reports an explicit JSON null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

type patchErrors map[string]string

func assign[T any](errs patchErrors, field string, o Optional[T], dst *T) {
	if !o.Set {
		return
	}
	if o.Null {
		errs[field] = "must not be null"
		return
	}
	*dst = o.Value
}

func (errs patchErrors) err() error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
