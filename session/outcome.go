// SPDX-License-Identifier: EPL-2.0

package session

// Status classifies an Outcome.
type Status int

const (
	// Pending means no value yet; call again with more input.
	Pending Status = iota
	// Ready means Value is set.
	Ready
	// Failed means Err is set.
	Failed
)

var statusLabels = [...]string{"pending", "ready", "failed"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusLabels) {
		return "unknown"
	}
	return statusLabels[s]
}

// Outcome is the result of one session operation.
type Outcome[T any] struct {
	Value  T
	Status Status
	Err    error
	// Rest is the unconsumed suffix of the input.
	Rest []byte
}

// Ready reports whether Value is set.
func (o Outcome[T]) Ready() bool { return o.Status == Ready }

// Pending reports whether the call needs more input.
func (o Outcome[T]) Pending() bool { return o.Status == Pending }

func ready[T any](v T, rest []byte) Outcome[T] {
	return Outcome[T]{Value: v, Status: Ready, Rest: rest}
}

func notReady[T any](st Status, err error, rest []byte) Outcome[T] {
	return Outcome[T]{Status: st, Err: err, Rest: rest}
}
