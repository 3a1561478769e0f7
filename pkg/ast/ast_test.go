package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

func buildCounterModel(idx *ids.Indexer) *Model {
	loc := source.Unknown
	countType := NewRangeType(idx, loc, num.Zero(), num.FromInt64(7))
	countVar := NewVarDecl(idx, loc, "count", countType, true)

	incGuard := NewLt(idx, loc, NewExprID(idx, loc, "count"), NewNumber(idx, loc, num.FromInt64(7)))
	incBody := []Stmt{
		NewAssignment(idx, loc,
			NewExprID(idx, loc, "count"),
			NewAdd(idx, loc, NewExprID(idx, loc, "count"), NewNumber(idx, loc, num.FromInt64(1)))),
	}
	incRule := NewSimpleRule(idx, loc, "increment", incGuard, nil, incBody)

	start := NewStartState(idx, loc, "init", nil, []Stmt{
		NewAssignment(idx, loc, NewExprID(idx, loc, "count"), NewNumber(idx, loc, num.Zero())),
	})

	bound := NewInvariant(idx, loc, "bounded",
		NewLeq(idx, loc, NewExprID(idx, loc, "count"), NewNumber(idx, loc, num.FromInt64(7))))

	return NewModel([]Decl{countVar}, nil, []Rule{start, incRule, bound})
}

func TestCloneIsStructurallyEqual(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildCounterModel(idx)

	clone := CloneModel(idx, model)

	assert.True(t, len(model.Decls) == len(clone.Decls))
	assert.True(t, EqualDecl(model.Decls[0], clone.Decls[0]))

	for i := range model.Rules {
		assert.True(t, EqualExpr(ruleGuard(model.Rules[i]), ruleGuard(clone.Rules[i])),
			"rule %d guard should be structurally equal after clone", i)
	}

	// clone must mint fresh unique ids, not share them with the original.
	assert.NotEqual(t, model.Decls[0].UID(), clone.Decls[0].UID())
}

func ruleGuard(r Rule) Expr {
	switch x := r.(type) {
	case *SimpleRule:
		return x.Guard
	case *Invariant:
		return x.Guard
	default:
		return nil
	}
}

func TestCloneDoesNotAliasChildren(t *testing.T) {
	idx := ids.NewIndexer()
	original := NewAdd(idx, source.Unknown, NewNumber(idx, source.Unknown, num.FromInt64(1)),
		NewNumber(idx, source.Unknown, num.FromInt64(2)))

	cloned := CloneExpr(idx, original).(*Add)

	assert.True(t, EqualExpr(original, cloned))
	assert.NotSame(t, original.Left, cloned.Left)
	assert.NotSame(t, original.Right, cloned.Right)
}

func TestResolveBindsSymbols(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildCounterModel(idx)

	err := Resolve(model)
	assert.NoError(t, err)

	countVar := model.Decls[0].(*VarDecl)

	for _, r := range model.Rules {
		if sr, ok := r.(*SimpleRule); ok {
			lhs := sr.Guard.(*Lt).Left.(*ExprID)
			assert.Same(t, countVar, lhs.Target)
		}
	}
}

func TestResolveUnknownSymbolFails(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	bad := NewInvariant(idx, loc, "broken",
		NewEq(idx, loc, NewExprID(idx, loc, "nonexistent"), NewNumber(idx, loc, num.Zero())))

	model := NewModel(nil, nil, []Rule{bad})

	err := Resolve(model)
	assert.Error(t, err)
}

func TestWalkExprVisitsEveryNode(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	expr := NewAdd(idx, loc, NewNumber(idx, loc, num.FromInt64(1)), NewNegative(idx, loc, NewNumber(idx, loc, num.FromInt64(2))))

	count := 0
	WalkExpr(expr, func(Expr) bool {
		count++
		return true
	})

	// Add, Number(1), Negative, Number(2)
	assert.Equal(t, 4, count)
}

func TestTransformExprReplacesLeaves(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	expr := NewAdd(idx, loc, NewNumber(idx, loc, num.FromInt64(1)), NewNumber(idx, loc, num.FromInt64(2)))

	result := TransformExpr(expr, func(e Expr) Expr {
		if n, ok := e.(*Number); ok {
			return NewNumber(idx, loc, num.Add(n.Value, num.FromInt64(10)))
		}

		return e
	})

	add := result.(*Add)
	assert.Equal(t, "11", add.Left.(*Number).Value.String())
	assert.Equal(t, "12", add.Right.(*Number).Value.String())
}

func TestIsConstantAndEvalConstant(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	constDecl := NewConstDecl(idx, loc, "Max", NewNumber(idx, loc, num.FromInt64(7)), nil)
	ref := NewExprID(idx, loc, "Max")
	ref.Target = constDecl

	expr := NewAdd(idx, loc, ref, NewNumber(idx, loc, num.FromInt64(1)))

	assert.True(t, IsConstant(expr))

	v, ok := EvalConstant(expr)
	assert.True(t, ok)
	assert.Equal(t, "8", v.String())
}

func TestIsLvalueAndIsReadonly(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	varDecl := NewVarDecl(idx, loc, "x", NewRangeType(idx, loc, num.Zero(), num.FromInt64(1)), true)
	ref := NewExprID(idx, loc, "x")
	ref.Target = varDecl

	assert.True(t, IsLvalue(ref))
	assert.False(t, IsReadonly(ref))

	field := NewField(idx, loc, ref, "f")
	assert.True(t, IsLvalue(field))

	literal := NewNumber(idx, loc, num.Zero())
	assert.False(t, IsLvalue(literal))
}
