// Package mapper provides generic slice mapping helpers for DTO conversion.
package mapper

// List maps every element of items through fn. It always returns a non-nil
// slice so JSON encoding produces [] instead of null for empty results.
func List[T any, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// ListWithError maps every element of items through fn, stopping at the
// first error.
func ListWithError[T any, D any](items []T, fn func(T) (D, error)) ([]D, error) {
	out := make([]D, 0, len(items))
	for _, item := range items {
		mapped, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}
