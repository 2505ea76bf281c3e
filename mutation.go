package segview

import "iter"

// readOnly supplies the mutating half of the list contract. Every method
// fails with ErrUnsupported and leaves the receiver untouched.
type readOnly[E comparable] struct{}

func (readOnly[E]) Append(...E) error             { return ErrUnsupported }
func (readOnly[E]) AppendAll(iter.Seq[E]) error   { return ErrUnsupported }
func (readOnly[E]) Remove(E) error                { return ErrUnsupported }
func (readOnly[E]) Insert(int, ...E) error        { return ErrUnsupported }
func (readOnly[E]) Set(int, E) error              { return ErrUnsupported }
func (readOnly[E]) Delete(int) error              { return ErrUnsupported }
func (readOnly[E]) DeleteFunc(func(E) bool) error { return ErrUnsupported }
func (readOnly[E]) RemoveAll(iter.Seq[E]) error   { return ErrUnsupported }
func (readOnly[E]) RetainAll(iter.Seq[E]) error   { return ErrUnsupported }
func (readOnly[E]) Clear() error                  { return ErrUnsupported }
func (readOnly[E]) Sort(func(a, b E) int) error   { return ErrUnsupported }
func (readOnly[E]) ReplaceAll(func(E) E) error    { return ErrUnsupported }

var _ Mutator[int] = readOnly[int]{}
