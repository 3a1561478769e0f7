package symmetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

// buildTwoNodeRing builds a minimal model: a two-element scalarset Node,
// and state var owner: array[Node] of Node (each position names another
// node, e.g. a "next" pointer), which is enough to exercise both the
// array-indexed-by-T and the simple-field-typed-T branches of the swap
// and compare emitters.
func buildTwoNodeRing(idx *ids.Indexer) *ast.Model {
	loc := source.Unknown

	nodeType := ast.NewScalarsetType(idx, loc, num.FromInt64(2))
	nodeDecl := ast.NewTypeDecl(idx, loc, "Node", nodeType)

	arrayType := ast.NewArrayType(idx, loc, nodeType, nodeType)
	owner := ast.NewVarDecl(idx, loc, "owner", arrayType, true)
	owner.SetOffset(num.Zero())

	return ast.NewModel([]ast.Decl{nodeDecl, owner}, nil, nil)
}

func TestEmitModelProducesFiveSignaturesPerScalarset(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildTwoNodeRing(idx)

	e := NewEmitter(model)

	var buf bytes.Buffer
	err := e.EmitModel(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "static void swap_Node(struct state *s, size_t x, size_t y) {")
	assert.Contains(t, out, "static int compare_Node(const struct state *s, size_t x, size_t y) {")
	assert.Contains(t, out, "static void sort_Node(struct state *s, size_t lower, size_t upper) {")
	assert.Contains(t, out, "static void state_canonicalise_exhaustive(struct state *s) {")
	assert.Contains(t, out, "static void state_canonicalise_heuristic(struct state *s) {")
}

func TestSwapEmitsRegionSwapForScalarsetIndexedArray(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildTwoNodeRing(idx)

	e := NewEmitter(model)

	var buf bytes.Buffer
	assert.NoError(t, e.emitSwap(&buf, e.sets[0]))

	out := buf.String()
	assert.Contains(t, out, "void *ha = state_handle(s, ")
	assert.Contains(t, out, "void *hb = state_handle(s, ")
	assert.Contains(t, out, "handle_write_raw(ha, vb);")
	assert.Contains(t, out, "handle_write_raw(hb, va);")
	assert.Contains(t, out, "for (size_t j0 = 0; j0 < 2; j0++)")
}

func TestSortUsesHoarePartitionDiscipline(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildTwoNodeRing(idx)

	e := NewEmitter(model)

	var buf bytes.Buffer
	assert.NoError(t, e.emitSort(&buf, e.sets[0]))

	out := buf.String()
	assert.Contains(t, out, "ptrdiff_t i = (ptrdiff_t) lower - 1;")
	assert.Contains(t, out, "ptrdiff_t j = (ptrdiff_t) upper + 1;")
	assert.Contains(t, out, "sort_Node(s, lower, (size_t) j);")
	assert.Contains(t, out, "sort_Node(s, (size_t) j + 1, upper);")
}

func TestHeuristicCallsSortOncePerScalarset(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildTwoNodeRing(idx)

	e := NewEmitter(model)

	var buf bytes.Buffer
	assert.NoError(t, e.emitHeuristic(&buf))

	assert.Equal(t, "static void state_canonicalise_heuristic(struct state *s) {\n    sort_Node(s, 0, 1);\n}\n", buf.String())
}

func TestExhaustiveNestsOneScheduleArrayPerScalarset(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	nodeType := ast.NewScalarsetType(idx, loc, num.FromInt64(2))
	nodeDecl := ast.NewTypeDecl(idx, loc, "Node", nodeType)

	colorType := ast.NewScalarsetType(idx, loc, num.FromInt64(3))
	colorDecl := ast.NewTypeDecl(idx, loc, "Color", colorType)

	arrayType := ast.NewArrayType(idx, loc, nodeType, nodeType)
	owner := ast.NewVarDecl(idx, loc, "owner", arrayType, true)
	owner.SetOffset(num.Zero())

	model := ast.NewModel([]ast.Decl{nodeDecl, colorDecl, owner}, nil, nil)

	e := NewEmitter(model)
	assert.Len(t, e.sets, 2)

	var buf bytes.Buffer
	assert.NoError(t, e.emitExhaustive(&buf))

	out := buf.String()
	assert.Contains(t, out, "sch_Node[2] = {0}")
	assert.Contains(t, out, "sch_Color[3] = {0}")
	assert.Contains(t, out, "state_cmp(s, &best) < 0")
}

func TestNewEmitterFindsNoScalarsetsInPlainModel(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	counterType := ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7))
	counter := ast.NewVarDecl(idx, loc, "count", counterType, true)

	model := ast.NewModel([]ast.Decl{counter}, nil, nil)

	e := NewEmitter(model)
	assert.Empty(t, e.sets)

	var buf bytes.Buffer
	assert.NoError(t, e.EmitModel(&buf))
	assert.Contains(t, buf.String(), "no scalarsets declared")
}
