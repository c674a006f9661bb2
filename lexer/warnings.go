package lexer

// WarningSet pairs a value with an accumulated list of non-fatal warnings,
// per spec.md §7: "every operation returns either a value paired with an
// accumulated warning list, or an error." Errors are returned the normal
// Go way (as a second return value); WarningSet only carries the
// non-fatal side of that contract, mirroring the Rust reference's
// `WarningSet::with_ok`/`unpack_into` idiom.
type WarningSet[T any] struct {
	Value    T
	Warnings []string
}

// Of wraps a value with no warnings.
func Of[T any](v T) WarningSet[T] {
	return WarningSet[T]{Value: v}
}

// WithWarning appends a warning and returns the updated set, so callers
// can chain: `return lexer.Of(grammar).WithWarning("...")`.
func (w WarningSet[T]) WithWarning(msg string) WarningSet[T] {
	w.Warnings = append(w.Warnings, msg)
	return w
}

// Merge appends another set's warnings onto w and returns w's value
// unchanged, for pipelines that fold several intermediate WarningSets
// into one final result.
func Merge[T any](w WarningSet[T], other []string) WarningSet[T] {
	w.Warnings = append(w.Warnings, other...)
	return w
}
