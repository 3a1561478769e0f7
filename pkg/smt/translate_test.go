package smt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/checkerr"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

func newCountVar(idx *ids.Indexer) (*ast.VarDecl, *ast.ExprID) {
	loc := source.Unknown
	typ := ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7))
	decl := ast.NewVarDecl(idx, loc, "count", typ, true)
	ref := ast.NewExprID(idx, loc, "count")
	ref.Target = decl

	return decl, ref
}

// declared opens a scope, registers decl's initial symbol, and returns the
// translator ready to translate expressions that read decl.
func declared(tr *Translator, decl *ast.VarDecl) string {
	tr.OpenScope()
	return tr.registerForTest(decl.UID())
}

// registerForTest exposes ctx.RegisterSymbol to tests without making the
// symbol context itself part of the public Translator API.
func (t *Translator) registerForTest(id ids.ID) string {
	return t.ctx.RegisterSymbol(id)
}

func TestTranslateExprIntegerTheory(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	countDecl, count := newCountVar(idx)

	tr := NewTranslator(false, 0)
	name := declared(tr, countDecl)
	defer tr.CloseScope()

	assert.Equal(t, "s0", name)

	expr := ast.NewAdd(idx, loc, count, ast.NewNumber(idx, loc, num.FromInt64(1)))

	got, err := tr.TranslateExpr(expr)
	assert.NoError(t, err)
	assert.Equal(t, "(+ s0 1)", got)
}

func TestTranslateExprUnregisteredSymbolFails(t *testing.T) {
	idx := ids.NewIndexer()
	_, count := newCountVar(idx)

	tr := NewTranslator(false, 0)
	_, err := tr.TranslateExpr(count)

	assert.Error(t, err)

	var checkErr *checkerr.CheckError
	assert.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checkerr.UnknownSymbol, checkErr.Kind())
}

func TestTranslateExprNegativeLiteralIntegerTheory(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	tr := NewTranslator(false, 0)
	got, err := tr.TranslateExpr(ast.NewNumber(idx, loc, num.FromInt64(-3)))

	assert.NoError(t, err)
	assert.Equal(t, "(- 3)", got)
}

func TestTranslateExprBitvectorTheory(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	countDecl, count := newCountVar(idx)

	tr := NewTranslator(true, 8)
	declared(tr, countDecl)
	defer tr.CloseScope()

	expr := ast.NewBand(idx, loc, count, ast.NewNumber(idx, loc, num.FromInt64(3)))

	got, err := tr.TranslateExpr(expr)
	assert.NoError(t, err)
	assert.Equal(t, "(bvand s0 (_ bv3 8))", got)
}

func TestTranslateExprModUsesBvsmodInBitvectorTheory(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	countDecl, count := newCountVar(idx)

	tr := NewTranslator(true, 8)
	declared(tr, countDecl)
	defer tr.CloseScope()

	expr := ast.NewMod(idx, loc, count, ast.NewNumber(idx, loc, num.FromInt64(3)))

	got, err := tr.TranslateExpr(expr)
	assert.NoError(t, err)
	assert.Equal(t, "(bvsmod s0 (_ bv3 8))", got)
}

func TestTranslateExprBitwiseWithoutBitvectorsFails(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	countDecl, count := newCountVar(idx)

	tr := NewTranslator(false, 0)
	declared(tr, countDecl)
	defer tr.CloseScope()

	expr := ast.NewBand(idx, loc, count, ast.NewNumber(idx, loc, num.FromInt64(3)))

	_, err := tr.TranslateExpr(expr)
	assert.Error(t, err)

	var checkErr *checkerr.CheckError
	assert.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checkerr.BitOpWithoutBitvectors, checkErr.Kind())
}

// TestTranslateAssignmentSimpleRebind walks scenario S4 verbatim: x := x + 1
// with a pre-existing binding x -> s0 emits (assert (= s1 (+ s0 1))), and a
// subsequent read of x resolves to s1.
func TestTranslateAssignmentSimpleRebind(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown
	countDecl, count := newCountVar(idx)

	tr := NewTranslator(false, 0)
	declared(tr, countDecl)
	defer tr.CloseScope()

	var buf bytes.Buffer
	rhs := ast.NewAdd(idx, loc, count, ast.NewNumber(idx, loc, num.FromInt64(1)))

	err := tr.TranslateAssignment(&buf, count, rhs)
	assert.NoError(t, err)
	assert.Equal(t, "(assert (= s1 (+ s0 1)))\n", buf.String())

	again, err := tr.TranslateExpr(count)
	assert.NoError(t, err)
	assert.Equal(t, "s1", again)
}

// TestTranslateAssignmentArrayElementUpdate walks scenario S5 verbatim:
// a[i] := 7 with a -> s0, i -> s1 emits (assert (= s2 (store s0 s1 7))).
func TestTranslateAssignmentArrayElementUpdate(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	indexType := ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(3))
	elemType := ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(255))
	arrayType := ast.NewArrayType(idx, loc, indexType, elemType)

	arrDecl := ast.NewVarDecl(idx, loc, "a", arrayType, true)
	arrRef := ast.NewExprID(idx, loc, "a")
	arrRef.Target = arrDecl

	iDecl := ast.NewVarDecl(idx, loc, "i", indexType, true)
	iRef := ast.NewExprID(idx, loc, "i")
	iRef.Target = iDecl

	tr := NewTranslator(false, 0)
	tr.OpenScope()
	defer tr.CloseScope()

	assert.Equal(t, "s0", tr.registerForTest(arrDecl.UID()))
	assert.Equal(t, "s1", tr.registerForTest(iDecl.UID()))

	lhs := ast.NewElement(idx, loc, arrRef, iRef)
	rhs := ast.NewNumber(idx, loc, num.FromInt64(7))

	var buf bytes.Buffer
	err := tr.TranslateAssignment(&buf, lhs, rhs)

	assert.NoError(t, err)
	assert.Equal(t, "(assert (= s2 (store s0 s1 7)))\n", buf.String())
}

func TestTranslateAssignmentRecordFieldUpdate(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	xField := ast.NewVarDecl(idx, loc, "x", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7)), false)
	yField := ast.NewVarDecl(idx, loc, "y", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7)), false)
	recordType := ast.NewRecordType(idx, loc, []*ast.VarDecl{xField, yField})

	typeDecl := ast.NewTypeDecl(idx, loc, "Point", recordType)
	pointVar := ast.NewVarDecl(idx, loc, "origin", recordType, true)
	pointRef := ast.NewExprID(idx, loc, "origin")
	pointRef.Target = pointVar

	model := ast.NewModel([]ast.Decl{typeDecl, pointVar}, nil, nil)

	tr := NewTranslator(false, 0)
	tr.RegisterModel(model)
	tr.OpenScope()
	defer tr.CloseScope()

	var declBuf bytes.Buffer
	err := tr.DeclareModelSymbols(&declBuf, model)
	assert.NoError(t, err)

	lhs := ast.NewField(idx, loc, pointRef, "x")
	rhs := ast.NewNumber(idx, loc, num.FromInt64(5))

	var buf bytes.Buffer
	err = tr.TranslateAssignment(&buf, lhs, rhs)

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "(declare-datatypes () ((Point (mk-Point (Point.x Int) (Point.y Int)))))")
	assert.Contains(t, out, "(assert (= s1 (mk-Point 5 (Point.y s0))))")
}

func TestDeclareModelSymbolsAssertsConstantDefinitions(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	limitConst := ast.NewConstDecl(idx, loc, "limit", ast.NewNumber(idx, loc, num.FromInt64(10)), nil)

	model := ast.NewModel([]ast.Decl{limitConst}, nil, nil)

	tr := NewTranslator(false, 0)
	tr.OpenScope()
	defer tr.CloseScope()

	var buf bytes.Buffer
	err := tr.DeclareModelSymbols(&buf, model)
	assert.NoError(t, err)
	assert.Equal(t, "(assert (= s0 10))\n", buf.String())

	name, ok := lookupForTest(tr, limitConst.UID())
	assert.True(t, ok)
	assert.Equal(t, "s0", name)
}

func lookupForTest(t *Translator, id ids.ID) (string, bool) {
	name, err := t.ctx.LookupSymbol(id, source.Unknown)
	if err != nil {
		return "", false
	}

	return name, true
}
