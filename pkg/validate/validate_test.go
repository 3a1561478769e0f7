package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/checkerr"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

func TestValidateAcceptsConstantConstDecl(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	limit := ast.NewConstDecl(idx, loc, "limit", ast.NewNumber(idx, loc, num.FromInt64(10)), nil)
	model := ast.NewModel([]ast.Decl{limit}, nil, nil)

	assert.NoError(t, Validate(model))
}

// TestValidateRejectsNonConstantConstDecl builds a ConstDecl whose value
// reads a state VarDecl (not constant: ast.IsConstant only accepts
// ConstDecl/Quantifier/AliasDecl-to-constant targets through an ExprID).
func TestValidateRejectsNonConstantConstDecl(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	counter := ast.NewVarDecl(idx, loc, "counter", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7)), true)
	bad := ast.NewConstDecl(idx, loc, "bad", ast.NewExprID(idx, loc, "counter"), nil)

	model := ast.NewModel([]ast.Decl{counter, bad}, nil, nil)

	err := Validate(model)
	assert.Error(t, err)

	var checkErr *checkerr.CheckError
	assert.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checkerr.NotConstant, checkErr.Kind())
}

func TestValidateSurfacesUnknownSymbolFromResolve(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	bad := ast.NewConstDecl(idx, loc, "bad", ast.NewExprID(idx, loc, "nowhere"), nil)
	model := ast.NewModel([]ast.Decl{bad}, nil, nil)

	err := Validate(model)
	assert.Error(t, err)

	var checkErr *checkerr.CheckError
	assert.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checkerr.UnknownSymbol, checkErr.Kind())
}

// TestValidateChecksConstDeclsNestedInRules confirms a ConstDecl declared
// local to a SimpleRule is checked the same way as a top-level one.
func TestValidateChecksConstDeclsNestedInRules(t *testing.T) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	counter := ast.NewVarDecl(idx, loc, "counter", ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7)), true)
	bad := ast.NewConstDecl(idx, loc, "bad", ast.NewExprID(idx, loc, "counter"), nil)

	rule := ast.NewSimpleRule(idx, loc, "advance", nil, []ast.Decl{bad}, nil)
	model := ast.NewModel([]ast.Decl{counter}, nil, []ast.Rule{rule})

	err := Validate(model)
	assert.Error(t, err)

	var checkErr *checkerr.CheckError
	assert.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checkerr.NotConstant, checkErr.Kind())
}

func TestValidateAcceptsModelWithNoDecls(t *testing.T) {
	model := ast.NewModel(nil, nil, nil)
	assert.NoError(t, Validate(model))
}
