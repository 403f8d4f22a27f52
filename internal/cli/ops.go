package cli

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	fi "github.com/Pure-Company/funcidioms"
)

// splitOp splits "name:arg" into its parts. The argument is optional.
func splitOp(spec string) (name string, arg int64, hasArg bool, err error) {
	name, raw, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
	if !hasArg {
		return name, 0, false, nil
	}
	arg, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return name, 0, true, fmt.Errorf("bad argument in %q: %w", spec, err)
	}
	return name, arg, true, nil
}

// lookupPredicate resolves a where clause such as "even" or "gt:3".
func lookupPredicate(spec string) (func(int64) bool, error) {
	name, n, hasArg, err := splitOp(spec)
	if err != nil {
		return nil, err
	}

	switch name {
	case "even":
		return func(v int64) bool { return v%2 == 0 }, nil
	case "odd":
		return func(v int64) bool { return v%2 != 0 }, nil
	case "positive":
		return func(v int64) bool { return v > 0 }, nil
	case "negative":
		return func(v int64) bool { return v < 0 }, nil
	}

	if !hasArg {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, spec)
	}
	switch name {
	case "gt":
		return func(v int64) bool { return v > n }, nil
	case "lt":
		return func(v int64) bool { return v < n }, nil
	case "div":
		if n == 0 {
			return nil, fmt.Errorf("%w: %q divides by zero", ErrUnknownPredicate, spec)
		}
		return func(v int64) bool { return v%n == 0 }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, spec)
}

// lookupProjection resolves a select clause such as "add:10" or "square".
func lookupProjection(spec string) (func(int64) int64, error) {
	name, n, hasArg, err := splitOp(spec)
	if err != nil {
		return nil, err
	}

	switch name {
	case "id":
		return func(v int64) int64 { return v }, nil
	case "neg":
		return func(v int64) int64 { return -v }, nil
	case "square":
		return func(v int64) int64 { return v * v }, nil
	}

	if !hasArg {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, spec)
	}
	switch name {
	case "add":
		return fi.NewAdder(n).Add, nil
	case "mul":
		return func(v int64) int64 { return v * n }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, spec)
}

// lookupStep resolves a bind step. Each step is checked arithmetic on
// uint64: overflow, underflow and division by zero yield None.
func lookupStep(spec string) (func(uint64) fi.Option[uint64], error) {
	name, n, hasArg, err := splitOp(spec)
	if err != nil {
		return nil, err
	}
	if !hasArg || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, spec)
	}
	arg := uint64(n)

	switch name {
	case "add":
		return func(v uint64) fi.Option[uint64] {
			sum, carry := bits.Add64(v, arg, 0)
			if carry != 0 {
				return fi.None[uint64]()
			}
			return fi.Some(sum)
		}, nil
	case "sub":
		return func(v uint64) fi.Option[uint64] {
			diff, borrow := bits.Sub64(v, arg, 0)
			if borrow != 0 {
				return fi.None[uint64]()
			}
			return fi.Some(diff)
		}, nil
	case "mul":
		return func(v uint64) fi.Option[uint64] {
			hi, lo := bits.Mul64(v, arg)
			if hi != 0 {
				return fi.None[uint64]()
			}
			return fi.Some(lo)
		}, nil
	case "div":
		return func(v uint64) fi.Option[uint64] {
			if arg == 0 {
				return fi.None[uint64]()
			}
			return fi.Some(v / arg)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStep, spec)
}
