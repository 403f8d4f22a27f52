/*
Package funcidioms provides small functional building blocks written with
Go generics.

# Overview

Each building block is a plain function type or a small generic value with
methods for composition. None of them keep shared state, block, or log;
they are safe to use from any goroutine.

# Overloading

Go has no function overloading. Each overload is a value of its own
functional type, and Foo picks one from the static argument type:

	Foo(uint(10)) // 100
	Foo("hello")  // "hello!"

	Foo(3.5) // does not compile: float64 is not Overloadable

# Monads

Option and Result share one bind shape. Absence or failure short-circuits
the rest of the chain:

	half := func(x int) Option[int] {
	    if x%2 != 0 {
	        return None[int]()
	    }
	    return Some(x / 2)
	}

	Chain(Some(20), half, half)       // Some(5)
	Chain(Some(20), half, half, half) // None

Both convert to and from github.com/samber/mo.

# Numeric Adders

One generic body replaces a per-type implementation list:

	Adder[int8]{Value: 42}.Add(8)    // 50
	Adder[float64]{Value: 42}.Add(8) // 50

# Queries

A from/where/select query composes lazy filter and map stages over an
iter.Seq:

	q := From(Between(1, 10)).
	    Where(func(i int) bool { return i%2 == 0 })

	for v := range Select(q, func(i int) int { return i + 10 }).All() {
	    fmt.Println(v) // 12 14 16 18 20
	}

Core concepts carried by every type:

	Empty()   // Monoid identity
	Compose() // Monoid operation
	Map()     // Functor-style transformation, where it applies

# Package Import

	import fi "github.com/Pure-Company/funcidioms"
*/
package funcidioms
