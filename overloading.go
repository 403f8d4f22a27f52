package funcidioms

import "fmt"

// ============================================================================
// Overloading
// ============================================================================

// Overload is one overload of a function: the transformation registered
// for argument type T, returning R.
//
// Go has no function overloading, so each overload is a value of its own
// type and the caller's static argument type picks which one applies.
//
// Example:
//
//	shout := TextFoo.Map(strings.ToUpper)
//	shout("hello") // "HELLO!"
type Overload[T, R any] func(arg T) R

// Call invokes the overload.
func (f Overload[T, R]) Call(arg T) R {
	return f(arg)
}

// Map transforms the overload's result.
func (f Overload[T, R]) Map(transform func(R) R) Overload[T, R] {
	return func(arg T) R {
		return transform(f(arg))
	}
}

// The registered overloads of Foo.
var (
	// UnsignedFoo multiplies its argument by 10.
	UnsignedFoo Overload[uint, uint] = timesTen[uint]

	// TextFoo appends an exclamation mark.
	TextFoo Overload[string, string] = func(s string) string {
		return s + "!"
	}
)

// Overloadable is the closed set of argument types Foo has an overload for.
// Exact types only: a named type such as `type ID uint` is rejected at
// compile time.
type Overloadable interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr | string
}

// Foo calls the overload registered for T without the caller naming it.
//
//	Foo(uint(10))  // 100
//	Foo("hello")   // "hello!"
//
// Unsigned arithmetic wraps on overflow.
func Foo[T Overloadable](arg T) T {
	switch v := any(arg).(type) {
	case string:
		return any(TextFoo(v)).(T)
	case uint:
		return any(UnsignedFoo(v)).(T)
	case uint8:
		return any(timesTen(v)).(T)
	case uint16:
		return any(timesTen(v)).(T)
	case uint32:
		return any(timesTen(v)).(T)
	case uint64:
		return any(timesTen(v)).(T)
	case uintptr:
		return any(timesTen(v)).(T)
	}
	// Overloadable is closed; every member has a case above.
	panic(fmt.Sprintf("funcidioms: no overload of Foo for %T", arg))
}

func timesTen[N uint | uint8 | uint16 | uint32 | uint64 | uintptr](n N) N {
	return n * 10
}
