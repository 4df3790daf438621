package lincheck

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports linear values that are provably dropped without being
// consumed.
var Analyzer = &analysis.Analyzer{
	Name:     "lincheck",
	Doc:      "report linear values that are dropped without being consumed",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	ins.Preorder(nodeFilter, func(n ast.Node) {
		switch stmt := n.(type) {
		case *ast.ExprStmt:
			call, ok := stmt.X.(*ast.CallExpr)
			if !ok {
				return
			}
			if !producesLinear(pass.TypesInfo.TypeOf(call)) {
				return
			}
			pass.Reportf(call.Pos(), "result of %s is dropped without being consumed",
				types.ExprString(call.Fun))

		case *ast.AssignStmt:
			checkAssign(pass, stmt)
		}
	})

	return nil, nil
}

// checkAssign reports linear values assigned to the blank identifier.
func checkAssign(pass *analysis.Pass, stmt *ast.AssignStmt) {
	if len(stmt.Rhs) == 1 && len(stmt.Lhs) > 1 {
		// Tuple assignment: a, _ := f()
		tup, ok := pass.TypesInfo.TypeOf(stmt.Rhs[0]).(*types.Tuple)
		if !ok || tup.Len() != len(stmt.Lhs) {
			return
		}
		for i, lhs := range stmt.Lhs {
			if isBlank(lhs) && isLinear(tup.At(i).Type()) {
				pass.Reportf(lhs.Pos(), "linear value assigned to blank identifier is dropped without being consumed")
			}
		}
		return
	}

	for i, lhs := range stmt.Lhs {
		if i >= len(stmt.Rhs) {
			break
		}
		if isBlank(lhs) && isLinear(pass.TypesInfo.TypeOf(stmt.Rhs[i])) {
			pass.Reportf(lhs.Pos(), "linear value assigned to blank identifier is dropped without being consumed")
		}
	}
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "_"
}

// producesLinear reports whether t is a linear type or a tuple containing
// one (multi-result operations such as Splice).
func producesLinear(t types.Type) bool {
	if tup, ok := t.(*types.Tuple); ok {
		for i := range tup.Len() {
			if isLinear(tup.At(i).Type()) {
				return true
			}
		}
		return false
	}
	return isLinear(t)
}

// isLinear matches the Linear named type from any package whose import
// path is "linear" or ends in "/linear", so the analyzer works against
// both the real module path and test stubs.
func isLinear(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj == nil || obj.Name() != "Linear" || obj.Pkg() == nil {
		return false
	}
	path := obj.Pkg().Path()
	return path == "linear" || strings.HasSuffix(path, "/linear")
}
