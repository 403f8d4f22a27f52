package funcidioms

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrNilError is the failure recorded by Err when it is given a nil error.
var ErrNilError = errors.New("funcidioms: Err called with nil error")

// Monad is the bind shape shared by Option and Result.
//
// M is the container type itself, so a step bound onto an Option returns an
// Option and a step bound onto a Result returns a Result.
type Monad[T, M any] interface {
	Bind(f func(T) M) M
}

var (
	_ Monad[int, Option[int]] = Option[int]{}
	_ Monad[int, Result[int]] = Result[int]{}
)

// Chain binds each step onto m from left to right. After the first absent
// or failed link no further step is invoked.
//
// Example:
//
//	mul5 := func(x int) Option[int] { return Some(x * 5) }
//	div10 := func(x int) Option[int] { return Some(x / 10) }
//	Chain(Some(10), mul5, div10) // Some(5)
func Chain[T any, M Monad[T, M]](m M, steps ...func(T) M) M {
	for _, step := range steps {
		m = m.Bind(step)
	}
	return m
}

// ============================================================================
// Option
// ============================================================================

// Option holds either a present value or nothing.
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Bind applies f to a present value and returns its result. An absent
// Option is returned as is and f is not called.
func (o Option[T]) Bind(f func(T) Option[T]) Option[T] {
	return Bind(o, f)
}

// Bind is the element-type-changing form of Option.Bind.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// Empty returns None (Monoid identity).
func (o Option[T]) Empty() Option[T] {
	return None[T]()
}

// Compose keeps the first present value (Monoid operation).
func (o Option[T]) Compose(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OkOr converts to a Result, failing with err when absent.
func (o Option[T]) OkOr(err error) Result[T] {
	if !o.ok {
		return Err[T](err)
	}
	return Ok(o.value)
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Mo converts to a samber/mo Option.
func (o Option[T]) Mo() mo.Option[T] {
	if !o.ok {
		return mo.None[T]()
	}
	return mo.Some(o.value)
}

// FromMoOption converts a samber/mo Option.
func FromMoOption[T any](m mo.Option[T]) Option[T] {
	v, ok := m.Get()
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// ============================================================================
// Result
// ============================================================================

// Result holds either a value or the error that prevented it.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result. A nil err is recorded as ErrNilError so the
// Result is never mistaken for a success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{err: err}
}

// Try lifts a (value, error) pair.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Get returns the value and the failure, if any.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsOk reports whether the Result succeeded.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Bind applies f on success. A failure is propagated unchanged and f is
// not called.
func (r Result[T]) Bind(f func(T) Result[T]) Result[T] {
	return BindResult(r, f)
}

// BindResult is the element-type-changing form of Result.Bind.
func BindResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Option drops the failure.
func (r Result[T]) Option() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.value)
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Mo converts to a samber/mo Result.
func (r Result[T]) Mo() mo.Result[T] {
	if r.err != nil {
		return mo.Err[T](r.err)
	}
	return mo.Ok(r.value)
}

// FromMoResult converts a samber/mo Result.
func FromMoResult[T any](m mo.Result[T]) Result[T] {
	v, err := m.Get()
	return Try(v, err)
}
