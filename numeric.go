package funcidioms

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable adds a stored value to its argument.
type Addable[N Number] interface {
	Add(arg N) N
}

// The supported element types. One generic body serves all of them.
var (
	_ Addable[int]     = Adder[int]{}
	_ Addable[int8]    = Adder[int8]{}
	_ Addable[int16]   = Adder[int16]{}
	_ Addable[int32]   = Adder[int32]{}
	_ Addable[int64]   = Adder[int64]{}
	_ Addable[uint]    = Adder[uint]{}
	_ Addable[uint8]   = Adder[uint8]{}
	_ Addable[uint16]  = Adder[uint16]{}
	_ Addable[uint32]  = Adder[uint32]{}
	_ Addable[uint64]  = Adder[uint64]{}
	_ Addable[float32] = Adder[float32]{}
	_ Addable[float64] = Adder[float64]{}
)

// Adder stores a value and adds it to every argument.
//
// Example:
//
//	Adder[int8]{Value: 42}.Add(8) // 50
type Adder[N Number] struct {
	Value N
}

// NewAdder returns an Adder storing v.
func NewAdder[N Number](v N) Adder[N] {
	return Adder[N]{Value: v}
}

// Add returns Value + arg. Integer addition wraps on overflow.
func (a Adder[N]) Add(arg N) N {
	return a.Value + arg
}

// Func returns the adder as an AddFunc.
func (a Adder[N]) Func() AddFunc[N] {
	return a.Add
}

// AddFunc is a functional binding for Addable.
type AddFunc[N Number] func(arg N) N

// Add implements Addable.
func (f AddFunc[N]) Add(arg N) N {
	return f(arg)
}

// Empty returns the adder that adds nothing (Monoid identity).
func (f AddFunc[N]) Empty() AddFunc[N] {
	return func(arg N) N { return arg }
}

// Compose applies f, then next (Monoid operation).
func (f AddFunc[N]) Compose(next AddFunc[N]) AddFunc[N] {
	return func(arg N) N {
		return next(f(arg))
	}
}
