package service

type outcome uint8

const (
	outcomeValue outcome = iota
	outcomeEmpty
	outcomeFailed
)

// result is the outcome of a best-effort step. Failures have already
// been logged by whoever produced them.
type result[T any] struct {
	value   T
	outcome outcome
	err     error
}

func valueResult[T any](v T) result[T] {
	return result[T]{value: v, outcome: outcomeValue}
}

func emptyResult[T any]() result[T] {
	return result[T]{outcome: outcomeEmpty}
}

func failedResult[T any](err error) result[T] {
	return result[T]{outcome: outcomeFailed, err: err}
}

func (r result[T]) ok() bool {
	return r.outcome == outcomeValue
}
