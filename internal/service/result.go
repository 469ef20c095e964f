package service

// Result is the success/failure envelope returned by every service
// operation. It is constructed once per operation and never mutated
// afterwards. Errors is populated only on failure.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// DataResult carries a payload alongside the Result envelope. Data is only
// meaningful when Success is true.
type DataResult[T any] struct {
	Result
	Data T `json:"data,omitempty"`
}

// OK builds a successful Result with an optional message.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed Result from a single error string.
func Fail(err, message string) Result {
	return Result{Message: message, Errors: []string{err}}
}

// FailAll builds a failed Result from an ordered list of error strings.
func FailAll(errs []string, message string) Result {
	return Result{Message: message, Errors: errs}
}

// OKData builds a successful DataResult wrapping data.
func OKData[T any](data T, message string) DataResult[T] {
	return DataResult[T]{Result: OK(message), Data: data}
}

// FailData builds a failed DataResult from a single error string.
func FailData[T any](err, message string) DataResult[T] {
	return DataResult[T]{Result: Fail(err, message)}
}

// FailDataAll builds a failed DataResult from an ordered list of error strings.
func FailDataAll[T any](errs []string, message string) DataResult[T] {
	return DataResult[T]{Result: FailAll(errs, message)}
}
