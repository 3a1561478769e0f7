package optimiser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

// TestReorderRecordFields walks scenario S7 verbatim: record
// {a: Range(0,1), b: Array(Range(0,255), Range(0,1)), c: Range(0,0)}
// reorders to [c, b, a] with widths 0, 256, 1 and offsets 0, 0, 256.
func TestReorderRecordFields(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	a := ast.NewVarDecl(idx, loc, "a", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1)), false)
	b := ast.NewVarDecl(idx, loc, "b", ast.NewArrayType(idx, loc,
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(255)),
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1))), false)
	c := ast.NewVarDecl(idx, loc, "c", ast.NewRangeType(idx, loc, num.Zero(), num.Zero()), false)

	record := ast.NewRecordType(idx, loc, []*ast.VarDecl{a, b, c})

	optimiseType(record)

	assert.Equal(t, []string{"c", "b", "a"}, fieldNames(record.Fields))
	assert.True(t, num.Equal(num.Zero(), record.Fields[0].Offset()))
	assert.True(t, num.Equal(num.Zero(), record.Fields[1].Offset()))
	assert.True(t, num.Equal(num.FromInt64(256), record.Fields[2].Offset()))
}

func fieldNames(fields []*ast.VarDecl) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}

	return names
}

// TestReorderRecordFieldsPreservesWidth checks invariant 2 of spec.md §8:
// size_bits(O(M)) == size_bits(M) for a Record's own total width.
func TestReorderRecordFieldsPreservesWidth(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	a := ast.NewVarDecl(idx, loc, "a", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1)), false)
	b := ast.NewVarDecl(idx, loc, "b", ast.NewArrayType(idx, loc,
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(255)),
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1))), false)
	c := ast.NewVarDecl(idx, loc, "c", ast.NewRangeType(idx, loc, num.Zero(), num.Zero()), false)

	record := ast.NewRecordType(idx, loc, []*ast.VarDecl{a, b, c})
	before := record.Width()

	optimiseType(record)

	assert.True(t, num.Equal(before, record.Width()))
}

// TestRunReordersTopLevelStateAfterNonVarDecls partitions a model's
// top-level declarations: a ConstDecl is kept ahead of the (reordered,
// re-offset) state VarDecls.
func TestRunReordersTopLevelStateAfterNonVarDecls(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	limit := ast.NewConstDecl(idx, loc, "limit", ast.NewNumber(idx, loc, num.FromInt64(10)), nil)

	a := ast.NewVarDecl(idx, loc, "a", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1)), true)
	b := ast.NewVarDecl(idx, loc, "b", ast.NewArrayType(idx, loc,
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(255)),
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1))), true)
	c := ast.NewVarDecl(idx, loc, "c", ast.NewRangeType(idx, loc, num.Zero(), num.Zero()), true)

	model := ast.NewModel([]ast.Decl{limit, a, b, c}, nil, nil)

	Run(model)

	assert.Same(t, ast.Decl(limit), model.Decls[0])

	stateNames := make([]string, 0, 3)
	for _, d := range model.Decls[1:] {
		stateNames = append(stateNames, d.(*ast.VarDecl).Name())
	}

	assert.Equal(t, []string{"c", "b", "a"}, stateNames)
}

// TestRunRecursesIntoArrayElementRecords confirms a Record nested inside
// an Array's element type is itself reordered.
func TestRunRecursesIntoArrayElementRecords(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	a := ast.NewVarDecl(idx, loc, "a", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(1)), false)
	c := ast.NewVarDecl(idx, loc, "c", ast.NewRangeType(idx, loc, num.Zero(), num.Zero()), false)
	inner := ast.NewRecordType(idx, loc, []*ast.VarDecl{a, c})

	elems := ast.NewVarDecl(idx, loc, "elems", ast.NewArrayType(idx, loc,
		ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(3)), inner), true)

	model := ast.NewModel([]ast.Decl{elems}, nil, nil)

	Run(model)

	assert.Equal(t, []string{"c", "a"}, fieldNames(inner.Fields))
}

func TestTierBucketsZeroPowerOfTwoAndRemainder(t *testing.T) {
	assert.Equal(t, 0, tier(num.Zero()))
	assert.Equal(t, 1, tier(num.FromInt64(1)))
	assert.Equal(t, 1, tier(num.FromInt64(256)))
	assert.Equal(t, 2, tier(num.FromInt64(3)))
	assert.Equal(t, 2, tier(num.FromInt64(5)))
}
