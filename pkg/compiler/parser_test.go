package compiler

import (
	"errors"
	"testing"
)

// mustParse parses src and fails the test on error.
func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src, "test.gengar", Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return prog
}

// mainBody parses a program with a single main and returns its block body.
func mainBody(t *testing.T, src string) []Stmt {
	t.Helper()
	prog := mustParse(t, src)
	if len(prog.Body) != 1 {
		t.Fatalf("program body has %d declarations, want 1", len(prog.Body))
	}
	m, ok := prog.Body[0].(*MainDeclare)
	if !ok {
		t.Fatalf("declaration is %T, want *MainDeclare", prog.Body[0])
	}
	return m.Body.Body
}

func TestParse_EmptyMain(t *testing.T) {
	body := mainBody(t, "main() { }")
	if len(body) != 0 {
		t.Errorf("body has %d statements, want 0", len(body))
	}
}

func TestParse_MainReturnAnnotation(t *testing.T) {
	prog := mustParse(t, "main(): number {\n  return 1\n}")
	m := prog.Body[0].(*MainDeclare)
	if m.Ret == nil || m.Ret.Name != "number" {
		t.Fatalf("return annotation = %v, want number", m.Ret)
	}
	if len(m.Body.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(m.Body.Body))
	}
	ret, ok := m.Body.Body[0].(*ReturnStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ReturnStatement", m.Body.Body[0])
	}
	if _, ok := ret.Argument.(*NumberLiteral); !ok {
		t.Errorf("return argument is %T, want *NumberLiteral", ret.Argument)
	}
}

func TestParse_VarDeclare(t *testing.T) {
	body := mainBody(t, "main() {\n  const msg: string = \"hi\";\n}")
	if len(body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(body))
	}
	v, ok := body[0].(*VarDeclare)
	if !ok {
		t.Fatalf("statement is %T, want *VarDeclare", body[0])
	}
	if v.Kind != "const" {
		t.Errorf("kind = %q, want const", v.Kind)
	}
	if v.Name.Name != "msg" {
		t.Errorf("name = %q, want msg", v.Name.Name)
	}
	if v.Type == nil || v.Type.Name != "string" {
		t.Errorf("type = %v, want string", v.Type)
	}
	s, ok := v.Init.(*StringLiteral)
	if !ok {
		t.Fatalf("init is %T, want *StringLiteral", v.Init)
	}
	if s.Value != `"hi"` {
		t.Errorf("init value = %q, want %q", s.Value, `"hi"`)
	}
	if v.Name.Line != 2 || v.Name.Col != 8 {
		t.Errorf("name position = (%d,%d), want (2,8)", v.Name.Line, v.Name.Col)
	}
}

func TestParse_MutWithoutAnnotation(t *testing.T) {
	body := mainBody(t, "main() { mut i = 0 }")
	v := body[0].(*VarDeclare)
	if v.Kind != "mut" || v.Type != nil {
		t.Errorf("got kind=%q type=%v, want mut with no annotation", v.Kind, v.Type)
	}
}

func TestParse_IfElseChain(t *testing.T) {
	body := mainBody(t, `main() {
  if (x) { return 1; } else if (y) { return 2; } else { return 3; }
}`)
	if len(body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(body))
	}
	first, ok := body[0].(*IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *IfStatement", body[0])
	}
	if id, ok := first.Test.(*Identifier); !ok || id.Name != "x" {
		t.Errorf("first test = %v, want x", first.Test)
	}
	second, ok := first.Alternate.(*IfStatement)
	if !ok {
		t.Fatalf("first alternate is %T, want *IfStatement", first.Alternate)
	}
	if id, ok := second.Test.(*Identifier); !ok || id.Name != "y" {
		t.Errorf("second test = %v, want y", second.Test)
	}
	last, ok := second.Alternate.(*BlockStatement)
	if !ok {
		t.Fatalf("second alternate is %T, want *BlockStatement", second.Alternate)
	}
	if len(last.Body) != 1 {
		t.Errorf("final else has %d statements, want 1", len(last.Body))
	}
}

func TestParse_IfWithoutElse(t *testing.T) {
	body := mainBody(t, "main() { if (x) { debugger } debugger }")
	if len(body) != 2 {
		t.Fatalf("body has %d statements, want 2", len(body))
	}
	ifStmt := body[0].(*IfStatement)
	if ifStmt.Alternate != nil {
		t.Errorf("alternate = %v, want nil", ifStmt.Alternate)
	}
	if _, ok := body[1].(*DebuggerStatement); !ok {
		t.Errorf("trailing statement is %T, want *DebuggerStatement", body[1])
	}
}

func TestParse_BadElse(t *testing.T) {
	_, err := Parse("main() { if (x) { } else 5 }", "test.gengar", Options{})
	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("got %v, want *UnexpectedTokenError", err)
	}
	if unexpected.Expected != "'if' or block after 'else'" {
		t.Errorf("expected field = %q", unexpected.Expected)
	}
}

func TestParse_WhileWithAssignment(t *testing.T) {
	body := mainBody(t, "main() { mut i: number = 0; while (i) { i = i + 1; } }")
	if len(body) != 2 {
		t.Fatalf("body has %d statements, want 2", len(body))
	}
	w, ok := body[1].(*WhileStatement)
	if !ok {
		t.Fatalf("statement is %T, want *WhileStatement", body[1])
	}
	if len(w.Body.Body) != 1 {
		t.Fatalf("loop body has %d statements, want 1", len(w.Body.Body))
	}
	es, ok := w.Body.Body[0].(*ExpressionStatement)
	if !ok {
		t.Fatalf("loop statement is %T, want *ExpressionStatement", w.Body.Body[0])
	}
	assign, ok := es.Expression.(*AssignExpression)
	if !ok {
		t.Fatalf("expression is %T, want *AssignExpression", es.Expression)
	}
	if assign.Operator != "=" {
		t.Errorf("operator = %q, want =", assign.Operator)
	}
	bin, ok := assign.Value.(*BinaryExpression)
	if !ok {
		t.Fatalf("value is %T, want *BinaryExpression", assign.Value)
	}
	if bin.Operator != "+" {
		t.Errorf("binary operator = %q, want +", bin.Operator)
	}
}

func TestParse_CompoundAssign(t *testing.T) {
	body := mainBody(t, "main() { i += 2 }")
	assign := body[0].(*ExpressionStatement).Expression.(*AssignExpression)
	if assign.Operator != "+=" {
		t.Errorf("operator = %q, want +=", assign.Operator)
	}
}

func TestParse_MemberCall(t *testing.T) {
	body := mainBody(t, "main() { const s: string = foo.bar.baz(x); }")
	v := body[0].(*VarDeclare)
	call, ok := v.Init.(*CallExpression)
	if !ok {
		t.Fatalf("init is %T, want *CallExpression", v.Init)
	}
	outer, ok := call.Callee.(*MemberExpression)
	if !ok {
		t.Fatalf("callee is %T, want *MemberExpression", call.Callee)
	}
	if outer.Property.Name != "baz" {
		t.Errorf("outer property = %q, want baz", outer.Property.Name)
	}
	inner, ok := outer.Object.(*MemberExpression)
	if !ok {
		t.Fatalf("inner object is %T, want *MemberExpression", outer.Object)
	}
	if inner.Property.Name != "bar" {
		t.Errorf("inner property = %q, want bar", inner.Property.Name)
	}
	root, ok := inner.Object.(*Identifier)
	if !ok || root.Name != "foo" {
		t.Errorf("chain root = %v, want foo", inner.Object)
	}
	if len(call.Args) != 1 {
		t.Fatalf("call has %d args, want 1", len(call.Args))
	}
}

func TestParse_MemberWithoutCall(t *testing.T) {
	body := mainBody(t, "main() { const v = a.b; }")
	v := body[0].(*VarDeclare)
	mem, ok := v.Init.(*MemberExpression)
	if !ok {
		t.Fatalf("init is %T, want *MemberExpression", v.Init)
	}
	if mem.Property.Name != "b" {
		t.Errorf("property = %q, want b", mem.Property.Name)
	}
}

func TestParse_MemberAssignment(t *testing.T) {
	body := mainBody(t, "main() { a.b = 1 }")
	assign := body[0].(*ExpressionStatement).Expression.(*AssignExpression)
	if _, ok := assign.Target.(*MemberExpression); !ok {
		t.Fatalf("target is %T, want *MemberExpression", assign.Target)
	}
}

func TestParse_CallWithMultipleArgs(t *testing.T) {
	body := mainBody(t, `main() { print("a", 1, x) }`)
	call := body[0].(*ExpressionStatement).Expression.(*CallExpression)
	if len(call.Args) != 3 {
		t.Fatalf("call has %d args, want 3", len(call.Args))
	}
	if _, ok := call.Args[0].(*StringLiteral); !ok {
		t.Errorf("arg 0 is %T, want *StringLiteral", call.Args[0])
	}
	if _, ok := call.Args[1].(*NumberLiteral); !ok {
		t.Errorf("arg 1 is %T, want *NumberLiteral", call.Args[1])
	}
}

func TestParse_BinaryRightLeaning(t *testing.T) {
	body := mainBody(t, "main() { const v = a + b - c; }")
	bin := body[0].(*VarDeclare).Init.(*BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("root operator = %q, want +", bin.Operator)
	}
	if _, ok := bin.Left.(*Identifier); !ok {
		t.Errorf("left is %T, want *Identifier", bin.Left)
	}
	right, ok := bin.Right.(*BinaryExpression)
	if !ok {
		t.Fatalf("right is %T, want *BinaryExpression (right-leaning)", bin.Right)
	}
	if right.Operator != "-" {
		t.Errorf("nested operator = %q, want -", right.Operator)
	}
}

func TestParse_BinaryLeftAssociativeOption(t *testing.T) {
	prog, err := Parse("main() { const v = a + b - c; }", "test.gengar", Options{LeftAssociative: true})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	bin := prog.Body[0].(*MainDeclare).Body.Body[0].(*VarDeclare).Init.(*BinaryExpression)
	if bin.Operator != "-" {
		t.Fatalf("root operator = %q, want - (left fold)", bin.Operator)
	}
	left, ok := bin.Left.(*BinaryExpression)
	if !ok {
		t.Fatalf("left is %T, want *BinaryExpression", bin.Left)
	}
	if left.Operator != "+" {
		t.Errorf("nested operator = %q, want +", left.Operator)
	}
}

func TestParse_Conditional(t *testing.T) {
	body := mainBody(t, "main() { const v = c ? a : b; }")
	cond, ok := body[0].(*VarDeclare).Init.(*ConditionalExpression)
	if !ok {
		t.Fatalf("init is %T, want *ConditionalExpression", body[0].(*VarDeclare).Init)
	}
	if id, ok := cond.Test.(*Identifier); !ok || id.Name != "c" {
		t.Errorf("test = %v, want c", cond.Test)
	}
}

func TestParse_NestedConditional(t *testing.T) {
	body := mainBody(t, "main() { const v = c ? a : d ? x : y; }")
	cond := body[0].(*VarDeclare).Init.(*ConditionalExpression)
	nested, ok := cond.Alternate.(*ConditionalExpression)
	if !ok {
		t.Fatalf("alternate is %T, want *ConditionalExpression", cond.Alternate)
	}
	if id, ok := nested.Test.(*Identifier); !ok || id.Name != "d" {
		t.Errorf("nested test = %v, want d", nested.Test)
	}
}

func TestParse_Unary(t *testing.T) {
	body := mainBody(t, "main() { const v = !ok; }")
	un, ok := body[0].(*VarDeclare).Init.(*UnaryExpression)
	if !ok {
		t.Fatalf("init is %T, want *UnaryExpression", body[0].(*VarDeclare).Init)
	}
	if un.Operator != "!" {
		t.Errorf("operator = %q, want !", un.Operator)
	}
}

func TestParse_FunctionDeclare(t *testing.T) {
	prog := mustParse(t, "fn add(a: number, b: number) {\n  return a + b;\n}")
	if len(prog.Body) != 1 {
		t.Fatalf("program body has %d declarations, want 1", len(prog.Body))
	}
	fn, ok := prog.Body[0].(*FunctionDeclare)
	if !ok {
		t.Fatalf("declaration is %T, want *FunctionDeclare", prog.Body[0])
	}
	if fn.Name.Name != "add" {
		t.Errorf("name = %q, want add", fn.Name.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("fn has %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Type == nil || fn.Params[0].Type.Name != "number" {
		t.Errorf("param 0 type = %v, want number", fn.Params[0].Type)
	}
}

func TestParse_FnAndMainTogether(t *testing.T) {
	prog := mustParse(t, "fn helper(x) { return x }\n\nmain() { helper(1) }")
	if len(prog.Body) != 2 {
		t.Fatalf("program body has %d declarations, want 2", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*FunctionDeclare); !ok {
		t.Errorf("first declaration is %T", prog.Body[0])
	}
	if _, ok := prog.Body[1].(*MainDeclare); !ok {
		t.Errorf("second declaration is %T", prog.Body[1])
	}
}

func TestParse_UnknownStatement(t *testing.T) {
	_, err := Parse("main() { else }", "test.gengar", Options{})
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("got %v, want *StructuralError", err)
	}
}

func TestParse_UnexpectedToken(t *testing.T) {
	_, err := Parse("main() { const 1 = 2; }", "test.gengar", Options{})
	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("got %v, want *UnexpectedTokenError", err)
	}
	if unexpected.Expected != "identifier" {
		t.Errorf("expected field = %q, want identifier", unexpected.Expected)
	}
}

func TestParse_LexErrorSurfaces(t *testing.T) {
	_, err := Parse("main() { const x = @; }", "test.gengar", Options{})
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v, want *LexError", err)
	}
}

func TestParse_ProgressOnStrayTokens(t *testing.T) {
	// Stray punctuation is skipped, not looped on.
	body := mainBody(t, "main() { , , debugger }")
	if len(body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(body))
	}
	if _, ok := body[0].(*DebuggerStatement); !ok {
		t.Errorf("statement is %T, want *DebuggerStatement", body[0])
	}
}

func TestParse_ProgressAtTopLevel(t *testing.T) {
	prog := mustParse(t, "; \n main() { }")
	if len(prog.Body) != 1 {
		t.Fatalf("program body has %d declarations, want 1", len(prog.Body))
	}
}

func TestParse_MissingFunctionName(t *testing.T) {
	_, err := Parse("fn () { }", "test.gengar", Options{})
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("got %v, want *StructuralError", err)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	_, err := Parse("main() { const x = 1;", "test.gengar", Options{})
	var unexpected *UnexpectedTokenError
	if !errors.As(err, &unexpected) {
		t.Fatalf("got %v, want *UnexpectedTokenError", err)
	}
	if unexpected.Expected != "'}'" {
		t.Errorf("expected field = %q, want '}'", unexpected.Expected)
	}
}
