package schemas

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Nullable distinguishes an absent key from an explicit null in a JSON patch
// body. Set is true whenever the key was present.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the carried value, or nil when the key was absent or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

// Apply writes the patch into dst: absent leaves it, null clears it.
func (n Nullable[T]) Apply(dst **T) {
	if !n.Set {
		return
	}
	*dst = n.Ptr()
}

func nullableValue[T any](field reflect.Value) interface{} {
	if n, ok := field.Interface().(Nullable[T]); ok {
		return n.Ptr()
	}
	return nil
}

// Validation tags on a Nullable field apply to the carried value.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(nullableValue[string], Nullable[string]{})
	v.RegisterCustomTypeFunc(nullableValue[int], Nullable[int]{})
	v.RegisterCustomTypeFunc(nullableValue[time.Time], Nullable[time.Time]{})
}
