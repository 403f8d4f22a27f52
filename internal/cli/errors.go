package cli

import "errors"

var (
	ErrUnknownPredicate  = errors.New("unknown predicate")
	ErrUnknownProjection = errors.New("unknown projection")
	ErrUnknownStep       = errors.New("unknown step")
	ErrUnknownType       = errors.New("unknown number type")
	ErrBadExpression     = errors.New("malformed query expression")
	ErrQueryNotFound     = errors.New("query not found")
)
