package cli

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	fi "github.com/Pure-Company/funcidioms"
)

// QueryExpr is a parsed query of the form
//
//	from <ident> in <source>; [where <predicate>;]* select <projection>;
//
// where source is an inclusive range "lo..hi" or a list "[a, b, c]".
type QueryExpr struct {
	Var    string
	Source Source
	Where  []string
	Select string
}

// Source is the element sequence a query reads from.
type Source struct {
	List   []int64
	Lo, Hi int64
	Range  bool
}

// Seq returns the source elements in order.
func (s Source) Seq() iter.Seq[int64] {
	if s.Range {
		return fi.Between(s.Lo, s.Hi)
	}
	return slices.Values(s.List)
}

// ParseQuery parses the textual query form. Clauses are separated by
// semicolons; a trailing semicolon is optional.
func ParseQuery(text string) (*QueryExpr, error) {
	clauses := lo.Compact(lo.Map(strings.Split(text, ";"), func(c string, _ int) string {
		return strings.TrimSpace(c)
	}))
	if len(clauses) < 2 {
		return nil, fmt.Errorf("%w: need at least a from and a select clause", ErrBadExpression)
	}

	expr := &QueryExpr{}

	from, ok := strings.CutPrefix(clauses[0], "from ")
	if !ok {
		return nil, fmt.Errorf("%w: first clause must be from, got %q", ErrBadExpression, clauses[0])
	}
	ident, src, ok := strings.Cut(strings.TrimSpace(from), " in ")
	if !ok || strings.TrimSpace(ident) == "" {
		return nil, fmt.Errorf("%w: expected \"from <ident> in <source>\", got %q", ErrBadExpression, clauses[0])
	}
	expr.Var = strings.TrimSpace(ident)

	source, err := parseSource(strings.TrimSpace(src))
	if err != nil {
		return nil, err
	}
	expr.Source = source

	last := len(clauses) - 1
	for _, clause := range clauses[1:last] {
		pred, ok := strings.CutPrefix(clause, "where ")
		if !ok {
			return nil, fmt.Errorf("%w: expected where clause, got %q", ErrBadExpression, clause)
		}
		expr.Where = append(expr.Where, strings.TrimSpace(pred))
	}

	sel, ok := strings.CutPrefix(clauses[last], "select ")
	if !ok {
		return nil, fmt.Errorf("%w: last clause must be select, got %q", ErrBadExpression, clauses[last])
	}
	expr.Select = strings.TrimSpace(sel)

	return expr, nil
}

func parseSource(src string) (Source, error) {
	if inner, ok := strings.CutPrefix(src, "["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return Source{}, fmt.Errorf("%w: unterminated list %q", ErrBadExpression, src)
		}
		items := lo.Compact(lo.Map(strings.Split(inner, ","), func(item string, _ int) string {
			return strings.TrimSpace(item)
		}))
		list := make([]int64, 0, len(items))
		for _, item := range items {
			v, err := strconv.ParseInt(item, 10, 64)
			if err != nil {
				return Source{}, fmt.Errorf("%w: list element %q: %w", ErrBadExpression, item, err)
			}
			list = append(list, v)
		}
		return Source{List: list}, nil
	}

	rawLo, rawHi, ok := strings.Cut(src, "..")
	if !ok {
		return Source{}, fmt.Errorf("%w: source must be lo..hi or [a, b, ...], got %q", ErrBadExpression, src)
	}
	start, err := strconv.ParseInt(strings.TrimSpace(rawLo), 10, 64)
	if err != nil {
		return Source{}, fmt.Errorf("%w: range start %q: %w", ErrBadExpression, rawLo, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(rawHi), 10, 64)
	if err != nil {
		return Source{}, fmt.Errorf("%w: range end %q: %w", ErrBadExpression, rawHi, err)
	}
	return Source{Lo: start, Hi: end, Range: true}, nil
}

// Build turns the expression into a lazy query. Unknown predicate or
// projection names are reported here.
func (e *QueryExpr) Build() (fi.Query[int64], error) {
	q := fi.From(e.Source.Seq())
	for _, name := range e.Where {
		pred, err := lookupPredicate(name)
		if err != nil {
			return fi.Query[int64]{}, err
		}
		q = q.Where(pred)
	}

	proj, err := lookupProjection(e.Select)
	if err != nil {
		return fi.Query[int64]{}, err
	}
	return fi.Select(q, proj), nil
}
