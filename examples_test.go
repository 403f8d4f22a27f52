package funcidioms_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	fi "github.com/Pure-Company/funcidioms"
)

// ============================================================================
// Example 1: Overloading by argument type
// ============================================================================

func ExampleFoo() {
	fmt.Println(fi.Foo(uint(10)))
	fmt.Println(fi.Foo("hello"))
	// Output:
	// 100
	// hello!
}

func ExampleOverload_Map() {
	shout := fi.TextFoo.Map(strings.ToUpper)
	fmt.Println(shout("careful"))
	// Output: CAREFUL!
}

// ============================================================================
// Example 2: Optional lookups without nil checks
// ============================================================================

// Inventory is a lookup that may come up empty.
type Inventory map[string]int

func (inv Inventory) Stock(item string) fi.Option[int] {
	if n, ok := inv[item]; ok {
		return fi.Some(n)
	}
	return fi.None[int]()
}

func Example_optionalLookup() {
	inv := Inventory{"apple": 12, "pear": 0}

	perBox := func(n int) fi.Option[int] {
		if n == 0 {
			return fi.None[int]()
		}
		return fi.Some(n / 4)
	}

	fmt.Println(inv.Stock("apple").Bind(perBox))
	fmt.Println(inv.Stock("pear").Bind(perBox))
	fmt.Println(inv.Stock("plum").Bind(perBox))
	// Output:
	// Some(3)
	// None
	// None
}

func ExampleChain() {
	mul5 := func(x uint) fi.Option[uint] { return fi.Some(x * 5) }
	div10 := func(x uint) fi.Option[uint] { return fi.Some(x / 10) }

	fmt.Println(fi.Chain(fi.Some[uint](10), mul5, div10))
	// Output: Some(5)
}

// ============================================================================
// Example 3: Failures flow through a Result chain
// ============================================================================

func ExampleBindResult() {
	parse := func(s string) fi.Result[int] {
		n, err := strconv.Atoi(s)
		return fi.Try(n, err)
	}
	positive := func(n int) fi.Result[int] {
		if n <= 0 {
			return fi.Err[int](errors.New("not positive"))
		}
		return fi.Ok(n)
	}

	fmt.Println(fi.BindResult(fi.Ok("42"), parse).Bind(positive))
	fmt.Println(fi.BindResult(fi.Ok("-1"), parse).Bind(positive))
	// Output:
	// Ok(42)
	// Err(not positive)
}

// ============================================================================
// Example 4: One adder body, many numeric types
// ============================================================================

func ExampleAdder() {
	fmt.Println(fi.Adder[int8]{Value: 42}.Add(8))
	fmt.Println(fi.Adder[uint64]{Value: 42}.Add(8))
	fmt.Println(fi.Adder[float32]{Value: 42}.Add(8.5))
	// Output:
	// 50
	// 50
	// 50.5
}

// ============================================================================
// Example 5: from / where / select
// ============================================================================

func ExampleSelect() {
	q := fi.From(fi.Between(1, 10)).
		Where(func(i int) bool { return i%2 == 0 })

	for v := range fi.Select(q, func(i int) int { return i + 10 }).All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 12 14 16 18 20
}

func ExampleLinq() {
	words := fi.FromSlice([]string{"go", "generic", "iter", "gopher"}).All()
	startsWithG := func(s string) bool { return strings.HasPrefix(s, "g") }
	longerThanTwo := func(s string) bool { return len(s) > 2 }

	for w := range fi.Linq(words, []func(string) bool{startsWithG, longerThanTwo}, fi.Foo[string]) {
		fmt.Println(w)
	}
	// Output:
	// generic!
	// gopher!
}

func ExampleQuery_Take() {
	squares := fi.Select(fi.From(fi.Count(1)), func(i int) int { return i * i })
	fmt.Println(squares.Take(5).Collect())
	// Output: [1 4 9 16 25]
}
