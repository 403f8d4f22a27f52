package cli

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryRange(t *testing.T) {
	expr, err := ParseQuery("from i in 1..10; where even; where gt:4; select add:10;")
	require.NoError(t, err)

	assert.Equal(t, "i", expr.Var)
	assert.Equal(t, Source{Lo: 1, Hi: 10, Range: true}, expr.Source)
	assert.Equal(t, []string{"even", "gt:4"}, expr.Where)
	assert.Equal(t, "add:10", expr.Select)
}

func TestParseQueryList(t *testing.T) {
	expr, err := ParseQuery("  from  x in [3, -1, 4,];select square  ")
	require.NoError(t, err)

	assert.Equal(t, "x", expr.Var)
	assert.Equal(t, []int64{3, -1, 4}, expr.Source.List)
	assert.Empty(t, expr.Where)
	assert.Equal(t, "square", expr.Select)
}

func TestParseQueryErrors(t *testing.T) {
	inputs := []string{
		"",
		"from i in 1..3;",
		"from i 1..3; select id;",
		"from i in 1-3; select id;",
		"from i in [1, 2; select id;",
		"from i in [1, two]; select id;",
		"from i in a..3; select id;",
		"from i in 1..3; filter even; select id;",
		"from i in 1..3; where even;",
	}

	for _, in := range inputs {
		_, err := ParseQuery(in)
		assert.ErrorIs(t, err, ErrBadExpression, "input %q", in)
	}
}

func TestQueryExprBuild(t *testing.T) {
	expr, err := ParseQuery("from i in 1..10; where odd; where div:3; select neg;")
	require.NoError(t, err)

	q, err := expr.Build()
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, -9}, q.Collect())

	// building twice reuses the same source
	assert.Equal(t, []int64{-3, -9}, q.Collect())
}

func TestSourceSeq(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 4}, slices.Collect(Source{Lo: 2, Hi: 4, Range: true}.Seq()))
	assert.Equal(t, []int64{9, 8}, slices.Collect(Source{List: []int64{9, 8}}.Seq()))
}
