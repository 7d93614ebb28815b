package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxenFxc/lua-ast-parser/ast"
	"github.com/OxenFxc/lua-ast-parser/diag"
	"github.com/OxenFxc/lua-ast-parser/lexer"
	"github.com/OxenFxc/lua-ast-parser/parser"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	d := diag.New(src, "test")
	prog := parser.Parse(src, d, parser.DefaultOptions())
	require.False(t, d.HasErrors(), "unexpected diagnostics: %s", d.RenderAll())
	return prog
}

func TestParseLocalWithInit(t *testing.T) {
	prog := parseOK(t, "local x = 1 + 2")
	require.Len(t, prog.Body, 1)
	stmt, ok := prog.Body[0].(*ast.LocalStmt)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Names[0].Name)
	require.Len(t, stmt.Init, 1)
	_, ok = stmt.Init[0].(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog := parseOK(t, "return 1 + 2 * 3")
	ret := prog.Body[0].(*ast.ReturnStmt)
	bin := ret.Args[0].(*ast.BinaryExpr)
	assert.Equal(t, lexer.Plus, bin.Op)
	_, rightIsMul := bin.Right.(*ast.BinaryExpr)
	assert.True(t, rightIsMul, "multiplication should bind tighter, nesting under the right side of +")
}

func TestParseConcatIsRightAssociative(t *testing.T) {
	prog := parseOK(t, `return "a" .. "b" .. "c"`)
	ret := prog.Body[0].(*ast.ReturnStmt)
	bin := ret.Args[0].(*ast.BinaryExpr)
	assert.Equal(t, lexer.Concat, bin.Op)
	_, leftIsLiteral := bin.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral)
	_, rightIsConcat := bin.Right.(*ast.BinaryExpr)
	assert.True(t, rightIsConcat, "right-associative concat nests on the right")
}

func TestParseIfElseifElse(t *testing.T) {
	prog := parseOK(t, `
if a then
  return 1
elseif b then
  return 2
else
  return 3
end
`)
	stmt := prog.Body[0].(*ast.IfStmt)
	require.Len(t, stmt.Clauses, 3)
	assert.NotNil(t, stmt.Clauses[0].Cond)
	assert.NotNil(t, stmt.Clauses[1].Cond)
	assert.Nil(t, stmt.Clauses[2].Cond, "else clause has no condition")
}

func TestParseNumericForWithOptionalStep(t *testing.T) {
	prog := parseOK(t, "for i = 1, 10, 2 do end")
	stmt := prog.Body[0].(*ast.ForNumericStmt)
	assert.Equal(t, "i", stmt.Var.Name)
	require.NotNil(t, stmt.Step)
}

func TestParseGenericForMultipleVars(t *testing.T) {
	prog := parseOK(t, "for k, v in pairs(t) do end")
	stmt := prog.Body[0].(*ast.ForGenericStmt)
	require.Len(t, stmt.Vars, 2)
	assert.Equal(t, "k", stmt.Vars[0].Name)
	assert.Equal(t, "v", stmt.Vars[1].Name)
}

func TestParseMethodDeclarationPrependsSelf(t *testing.T) {
	prog := parseOK(t, "function obj:greet(name) end")
	stmt := prog.Body[0].(*ast.FunctionDeclStmt)
	assert.True(t, stmt.IsMethod)
	require.Len(t, stmt.Params, 2)
	assert.Equal(t, "self", stmt.Params[0].Name)
	assert.Equal(t, "name", stmt.Params[1].Name)
}

func TestParseMethodCallSugar(t *testing.T) {
	prog := parseOK(t, "obj:method()")
	stmt := prog.Body[0].(*ast.ExpressionStmt)
	call := stmt.X.(*ast.CallExpr)
	member := call.Callee.(*ast.MemberExpr)
	assert.True(t, member.IsMethodCall)
}

func TestParseTableConstructorMixedFields(t *testing.T) {
	prog := parseOK(t, `return {1, 2, x = 3, [4+1] = 5}`)
	ret := prog.Body[0].(*ast.ReturnStmt)
	tbl := ret.Args[0].(*ast.TableConstructorExpr)
	require.Len(t, tbl.Fields, 4)
	_, ok := tbl.Fields[0].(ast.ArrayField)
	assert.True(t, ok)
	_, ok = tbl.Fields[2].(ast.NamedField)
	assert.True(t, ok)
	_, ok = tbl.Fields[3].(ast.ComputedField)
	assert.True(t, ok)
}

func TestParseVarargFunction(t *testing.T) {
	prog := parseOK(t, "local function f(a, ...) end")
	stmt := prog.Body[0].(*ast.FunctionDeclStmt)
	assert.True(t, stmt.Vararg)
	require.Len(t, stmt.Params, 1)
}

func TestParseAssignmentToMemberTarget(t *testing.T) {
	prog := parseOK(t, "t.x = 1")
	stmt := prog.Body[0].(*ast.AssignmentStmt)
	_, ok := stmt.Targets[0].(*ast.MemberExpr)
	assert.True(t, ok)
}

func TestParseInvalidAssignmentTargetRecordsDiagnostic(t *testing.T) {
	d := diag.New("1 = 2", "test")
	parser.Parse("1 = 2", d, parser.DefaultOptions())
	assert.True(t, d.HasErrors())
}

func TestParseBareNonCallExpressionStatementRecordsDiagnostic(t *testing.T) {
	d := diag.New("1 + 2", "test")
	parser.Parse("1 + 2", d, parser.DefaultOptions())
	assert.True(t, d.HasErrors())
}

func TestParseNeverPanicsOnMalformedInput(t *testing.T) {
	d := diag.New("if then end", "test")
	assert.NotPanics(t, func() {
		parser.Parse("if then end", d, parser.DefaultOptions())
	})
	assert.True(t, d.HasErrors())
}
