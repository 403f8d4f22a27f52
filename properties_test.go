package funcidioms

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestProperties_Foo(t *testing.T) {
	properties := newProperties()

	properties.Property("unsigned argument is multiplied by 10", prop.ForAll(
		func(n uint) bool {
			return Foo(n) == n*10
		},
		gen.UInt(),
	))

	properties.Property("text argument gets an exclamation mark", prop.ForAll(
		func(s string) bool {
			return Foo(s) == s+"!"
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestProperties_Bind(t *testing.T) {
	properties := newProperties()

	// f drops multiples of 3, g drops negatives
	f := func(x int) Option[int] {
		if x%3 == 0 {
			return None[int]()
		}
		return Some(x * 2)
	}
	g := func(x int) Option[int] {
		if x < 0 {
			return None[int]()
		}
		return Some(x + 1)
	}

	properties.Property("bind on None never calls f", prop.ForAll(
		func(x int) bool {
			called := false
			got := None[int]().Bind(func(y int) Option[int] {
				called = true
				return Some(x + y)
			})
			return got.IsNone() && !called
		},
		gen.Int(),
	))

	properties.Property("bind on Some(x) is f(x)", prop.ForAll(
		func(x int) bool {
			return Some(x).Bind(f) == f(x)
		},
		gen.Int(),
	))

	properties.Property("bind is associative", prop.ForAll(
		func(x int) bool {
			left := Some(x).Bind(f).Bind(g)
			right := Some(x).Bind(func(y int) Option[int] { return f(y).Bind(g) })
			return left == right
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestProperties_Query(t *testing.T) {
	properties := newProperties()

	properties.Property("query without filters is a map", prop.ForAll(
		func(xs []int) bool {
			got := Select(FromSlice(xs), plusTen).Collect()
			if len(got) != len(xs) {
				return false
			}
			for i, x := range xs {
				if got[i] != x+10 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("query agrees with an eager filter then map", prop.ForAll(
		func(xs []int) bool {
			var want []int
			for _, x := range xs {
				if isEven(x) {
					want = append(want, plusTen(x))
				}
			}
			got := Select(FromSlice(xs).Where(isEven), plusTen).Collect()
			return slices.Equal(want, got)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
