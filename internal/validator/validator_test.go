package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfi/internal/parser"
)

func mustParse(t *testing.T, source string) []parser.Statement {
	t.Helper()
	program, err := parser.ParseProgram(source)
	require.NoError(t, err, "test source must parse")
	return program
}

func kindOf(t *testing.T, err error) *Error {
	t.Helper()
	verr, ok := err.(*Error)
	require.True(t, ok, "expected *validator.Error, got %T", err)
	return verr
}

func TestEmptyPrintStatement(t *testing.T) {
	program := []parser.Statement{&parser.PrintStmt{}}
	err := Validate(program)
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, EmptyPrintStatement, verr.Kind)
	assert.Equal(t, 1, verr.Statement)
}

func TestEmptyIdentifier(t *testing.T) {
	program := []parser.Statement{
		&parser.ConstStmt{Name: "", Value: &parser.NumberLiteral{Value: 42}},
	}
	err := Validate(program)
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, EmptyIdentifier, verr.Kind)
	assert.Equal(t, "rrr", verr.Construct)
}

func TestEmptyIfBlock(t *testing.T) {
	program := []parser.Statement{
		&parser.IfStmt{Condition: &parser.NumberLiteral{Value: 1}},
	}
	err := Validate(program)
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, EmptyBlock, verr.Kind)
	assert.Equal(t, "magadheera", verr.Construct)
}

func TestEmptyForBody(t *testing.T) {
	program := mustParse(t, "eega(rrr i = 0; i < 3; i + 1) { bahubali(i); }")
	forStmt := program[0].(*parser.ForStmt)
	forStmt.Body = nil

	err := Validate(program)
	require.Error(t, err)
	verr := kindOf(t, err)
	assert.Equal(t, EmptyBlock, verr.Kind)
	assert.Equal(t, "eega", verr.Construct)
}

func TestDuplicateVariable(t *testing.T) {
	source := `
		rrr x = 1;
		rrr x = 2;
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, DuplicateVariable, verr.Kind)
	assert.Equal(t, "x", verr.Name)
	// Reported against the original declaration's ordinal.
	assert.Equal(t, 1, verr.Statement)
}

func TestConstToLetShadowingIsAllowed(t *testing.T) {
	source := `
		rrr x = 1;
		pushpa x = 2;
	`
	assert.NoError(t, Validate(mustParse(t, source)))
}

func TestLetToConstIsRejected(t *testing.T) {
	source := `
		pushpa x = 1;
		rrr x = 2;
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)
	assert.Equal(t, DuplicateVariable, kindOf(t, err).Kind)
}

func TestLetToLetIsRejected(t *testing.T) {
	source := `
		pushpa x = 1;
		pushpa x = 2;
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)
	assert.Equal(t, DuplicateVariable, kindOf(t, err).Kind)
}

func TestUndefinedVariable(t *testing.T) {
	err := Validate(mustParse(t, "bahubali(missing);"))
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, UndefinedVariable, verr.Kind)
	assert.Equal(t, "missing", verr.Name)
	assert.Equal(t, 1, verr.Statement)
}

func TestInvalidOperator(t *testing.T) {
	program := []parser.Statement{
		&parser.PrintStmt{Args: []parser.Expression{
			&parser.BinaryExpr{
				Left:     &parser.NumberLiteral{Value: 1},
				Operator: "&",
				Right:    &parser.NumberLiteral{Value: 2},
			},
		}},
	}
	err := Validate(program)
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, InvalidExpression, verr.Kind)
	assert.Contains(t, verr.Detail, "Unknown operator")
}

func TestValidProgram(t *testing.T) {
	source := `
		rrr x = 10;
		pushpa y = 5;
		bahubali("sum", x + y);
	`
	assert.NoError(t, Validate(mustParse(t, source)))
}

// Declarations inside a block stay invisible to the enclosing scope and to
// sibling branches: each nested block validates against its own copy.
func TestSiblingBranchesAreIsolated(t *testing.T) {
	source := `
		rrr x = 1;
		magadheera(x > 0) {
			pushpa y = 1;
		} karthikeya {
			bahubali(y);
		}
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)

	verr := kindOf(t, err)
	assert.Equal(t, UndefinedVariable, verr.Kind)
	assert.Equal(t, "y", verr.Name)
	assert.Equal(t, 2, verr.Statement)
}

func TestBlockDeclarationsDoNotLeakOut(t *testing.T) {
	source := `
		magadheera(1 > 0) {
			pushpa inner = 1;
		}
		bahubali(inner);
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)
	assert.Equal(t, UndefinedVariable, kindOf(t, err).Kind)
}

func TestOuterBindingsVisibleInNestedBlocks(t *testing.T) {
	source := `
		rrr x = 1;
		pokiri(x < 10) {
			bahubali(x);
		}
	`
	assert.NoError(t, Validate(mustParse(t, source)))
}

// The eega init clause binds in the outer scope, so the loop variable is
// visible to the condition, update and body.
func TestForLoopVariableVisibleInBody(t *testing.T) {
	source := `
		eega(rrr i = 0; i < 3; i + 1) {
			bahubali(i);
		}
	`
	assert.NoError(t, Validate(mustParse(t, source)))
}

func TestNestedStatementsReportEnclosingOrdinal(t *testing.T) {
	source := `
		rrr a = 1;
		rrr b = 2;
		pokiri(a < 10) {
			bahubali(nothere);
		}
	`
	err := Validate(mustParse(t, source))
	require.Error(t, err)
	// The failing print sits under top-level statement 3.
	assert.Equal(t, 3, kindOf(t, err).Statement)
}

func TestContextDeclare(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Declare("x", 1, DeclConst))
	assert.True(t, ctx.Declared("x"))
	assert.False(t, ctx.Declared("y"))

	err := ctx.Declare("x", 2, DeclConst)
	require.Error(t, err)
	verr := kindOf(t, err)
	assert.Equal(t, DuplicateVariable, verr.Kind)
	assert.Equal(t, 1, verr.Statement)
}

func TestContextCloneIsIndependent(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Declare("x", 1, DeclConst))

	clone := ctx.Clone()
	require.NoError(t, clone.Declare("y", 2, DeclLet))

	assert.True(t, clone.Declared("x"))
	assert.False(t, ctx.Declared("y"))
}

func TestValidateAllCollectsEveryFailure(t *testing.T) {
	program := []parser.Statement{
		&parser.PrintStmt{},
		&parser.ConstStmt{Name: "x", Value: &parser.NumberLiteral{Value: 1}},
		&parser.ConstStmt{Name: "x", Value: &parser.NumberLiteral{Value: 2}},
		&parser.PrintStmt{Args: []parser.Expression{&parser.Identifier{Name: "undefined"}}},
	}

	errs := ValidateAll(program)
	require.Len(t, errs, 3)

	kinds := make(map[ErrorKind]bool)
	for _, err := range errs {
		kinds[kindOf(t, err).Kind] = true
	}
	assert.True(t, kinds[EmptyPrintStatement])
	assert.True(t, kinds[DuplicateVariable])
	assert.True(t, kinds[UndefinedVariable])
}

func TestValidateAllOnValidProgram(t *testing.T) {
	source := `
		rrr x = 1;
		bahubali(x);
	`
	assert.Nil(t, ValidateAll(mustParse(t, source)))
}
