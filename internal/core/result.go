package core

// PartialResult is the outcome of a parse that may stop early. Parsed is
// always usable; Err is set only when parsing halted before the end of the
// input, in which case Parsed holds everything read up to that point.
type PartialResult[T any] struct {
	parsed T
	err    error
}

// NewComplete wraps a value produced from the whole input.
func NewComplete[T any](parsed T) PartialResult[T] {
	return PartialResult[T]{parsed: parsed}
}

// NewPartial wraps a value together with the error that stopped parsing.
func NewPartial[T any](parsed T, err error) PartialResult[T] {
	return PartialResult[T]{parsed: parsed, err: err}
}

// Parsed returns the parsed value, complete or not.
func (r PartialResult[T]) Parsed() T {
	return r.parsed
}

// Err returns the error that stopped parsing, or nil.
func (r PartialResult[T]) Err() error {
	return r.err
}

// IsComplete reports whether the whole input was consumed.
func (r PartialResult[T]) IsComplete() bool {
	return r.err == nil
}

// Result returns the parsed value and the error, for callers that treat any
// early stop as a failure.
func (r PartialResult[T]) Result() (T, error) {
	return r.parsed, r.err
}
