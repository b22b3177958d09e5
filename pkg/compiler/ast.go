package compiler

import (
	"fmt"
	"strings"
)

// Position is the source origin carried by every node. Line is 1-based,
// Col is 0-based, File is the input path as given to the parser.
type Position struct {
	Line uint32
	Col  uint32
	File string
}

func positionOf(tok Token, file string) Position {
	return Position{Line: tok.Line, Col: tok.Col, File: file}
}

// Node is any node in the tree.
type Node interface {
	Pos() Position
	String() string
}

// Expr is implemented by every node that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a standalone unit of execution.
type Stmt interface {
	Node
	stmtNode()
}

//  Auxiliary

// TypeAnnotation is the ": string" / ": number" / ": boolean" marker on
// declarations and parameters. The target has no types; emission drops it.
type TypeAnnotation struct {
	Position
	Name string
}

func (t *TypeAnnotation) Pos() Position  { return t.Position }
func (t *TypeAnnotation) String() string { return ":" + t.Name }

// Param is one function parameter: a name with an optional annotation.
type Param struct {
	Name *Identifier
	Type *TypeAnnotation // may be nil
}

//  Statements

// Program is the root node. It exclusively owns its body.
type Program struct {
	File string
	Body []Stmt
}

func (p *Program) Pos() Position { return Position{Line: 1, Col: 0, File: p.File} }
func (p *Program) String() string {
	return fmt.Sprintf("Program(%s, decls=%d)", p.File, len(p.Body))
}
func (*Program) stmtNode() {}

// MainDeclare represents  main() { body }  with an optional return
// annotation.
type MainDeclare struct {
	Position
	Ret  *TypeAnnotation // may be nil
	Body *BlockStatement
}

func (m *MainDeclare) Pos() Position  { return m.Position }
func (m *MainDeclare) String() string { return fmt.Sprintf("MainDeclare(%s)", m.Body) }
func (*MainDeclare) stmtNode()        {}

// FunctionDeclare represents  fn name(params) { body }
type FunctionDeclare struct {
	Position
	Name   *Identifier
	Params []Param
	Body   *BlockStatement
}

func (f *FunctionDeclare) Pos() Position { return f.Position }
func (f *FunctionDeclare) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name.Name
	}
	return fmt.Sprintf("FunctionDeclare(%s(%s) %s)", f.Name.Name, strings.Join(names, ", "), f.Body)
}
func (*FunctionDeclare) stmtNode() {}

// VarDeclare represents  const|mut name [: type] = init
type VarDeclare struct {
	Position
	Kind string // "const" or "mut"
	Name *Identifier
	Type *TypeAnnotation // may be nil
	Init Expr
}

func (v *VarDeclare) Pos() Position { return v.Position }
func (v *VarDeclare) String() string {
	return fmt.Sprintf("VarDeclare(%s %s = %s)", v.Kind, v.Name.Name, v.Init)
}
func (*VarDeclare) stmtNode() {}

// IfStatement represents  if (test) consequent [else alternate]  where
// alternate is another IfStatement (else-if chain) or a BlockStatement.
type IfStatement struct {
	Position
	Test       Expr
	Consequent *BlockStatement
	Alternate  Stmt // *IfStatement, *BlockStatement, or nil
}

func (i *IfStatement) Pos() Position { return i.Position }
func (i *IfStatement) String() string {
	if i.Alternate != nil {
		return fmt.Sprintf("IfStatement(if %s then %s else %s)", i.Test, i.Consequent, i.Alternate)
	}
	return fmt.Sprintf("IfStatement(if %s then %s)", i.Test, i.Consequent)
}
func (*IfStatement) stmtNode() {}

// WhileStatement represents  while (test) body
type WhileStatement struct {
	Position
	Test Expr
	Body *BlockStatement
}

func (w *WhileStatement) Pos() Position { return w.Position }
func (w *WhileStatement) String() string {
	return fmt.Sprintf("WhileStatement(while %s do %s)", w.Test, w.Body)
}
func (*WhileStatement) stmtNode() {}

// ReturnStatement represents  return expr
type ReturnStatement struct {
	Position
	Argument Expr
}

func (r *ReturnStatement) Pos() Position  { return r.Position }
func (r *ReturnStatement) String() string { return fmt.Sprintf("ReturnStatement(%s)", r.Argument) }
func (*ReturnStatement) stmtNode()        {}

// DebuggerStatement represents the bare  debugger  statement.
type DebuggerStatement struct {
	Position
}

func (d *DebuggerStatement) Pos() Position  { return d.Position }
func (d *DebuggerStatement) String() string { return "DebuggerStatement" }
func (*DebuggerStatement) stmtNode()        {}

// ExpressionStatement is an expression in statement position.
type ExpressionStatement struct {
	Position
	Expression Expr
}

func (e *ExpressionStatement) Pos() Position  { return e.Position }
func (e *ExpressionStatement) String() string { return fmt.Sprintf("ExpressionStatement(%s)", e.Expression) }
func (*ExpressionStatement) stmtNode()        {}

// BlockStatement represents  { statements... }
type BlockStatement struct {
	Position
	Body []Stmt
}

func (b *BlockStatement) Pos() Position  { return b.Position }
func (b *BlockStatement) String() string { return fmt.Sprintf("BlockStatement(len=%d)", len(b.Body)) }
func (*BlockStatement) stmtNode()        {}

//  Expressions

// AssignExpression represents  target OP value  where OP is one of
// = += -= *= /= and the operator text is emitted verbatim.
type AssignExpression struct {
	Position
	Target   Expr // *Identifier or *MemberExpression
	Operator string
	Value    Expr
}

func (a *AssignExpression) Pos() Position { return a.Position }
func (a *AssignExpression) String() string {
	return fmt.Sprintf("AssignExpression(%s %s %s)", a.Target, a.Operator, a.Value)
}
func (*AssignExpression) exprNode() {}

// BinaryExpression represents  Left Op Right. Trees are right-leaning as
// parsed; Options.LeftAssociative folds them the other way.
type BinaryExpression struct {
	Position
	Left     Expr
	Operator string
	Right    Expr
}

func (b *BinaryExpression) Pos() Position { return b.Position }
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}
func (*BinaryExpression) exprNode() {}

// UnaryExpression represents  Op Operand.
type UnaryExpression struct {
	Position
	Operator string
	Operand  Expr
}

func (u *UnaryExpression) Pos() Position  { return u.Position }
func (u *UnaryExpression) String() string { return fmt.Sprintf("(%s%s)", u.Operator, u.Operand) }
func (*UnaryExpression) exprNode()        {}

// ConditionalExpression represents  test ? consequent : alternate.
type ConditionalExpression struct {
	Position
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (c *ConditionalExpression) Pos() Position { return c.Position }
func (c *ConditionalExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test, c.Consequent, c.Alternate)
}
func (*ConditionalExpression) exprNode() {}

// CallExpression represents  callee(args...)  where callee is an
// identifier or a member chain.
type CallExpression struct {
	Position
	Callee Expr
	Args   []Expr
}

func (c *CallExpression) Pos() Position { return c.Position }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("CallExpression(%s(%s))", c.Callee, strings.Join(args, ", "))
}
func (*CallExpression) exprNode() {}

// MemberExpression represents  object.property  chains, left-nested:
// a.b.c parses as Member(Member(a, b), c).
type MemberExpression struct {
	Position
	Object   Expr
	Property *Identifier
}

func (m *MemberExpression) Pos() Position  { return m.Position }
func (m *MemberExpression) String() string { return fmt.Sprintf("%s.%s", m.Object, m.Property.Name) }
func (*MemberExpression) exprNode()        {}

// Identifier is a bare name.
type Identifier struct {
	Position
	Name string
}

func (i *Identifier) Pos() Position  { return i.Position }
func (i *Identifier) String() string { return i.Name }
func (*Identifier) exprNode()        {}

// StringLiteral keeps the raw quoted text so emission reproduces it
// exactly.
type StringLiteral struct {
	Position
	Value string
}

func (s *StringLiteral) Pos() Position  { return s.Position }
func (s *StringLiteral) String() string { return s.Value }
func (*StringLiteral) exprNode()        {}

// NumberLiteral keeps the literal digits as text.
type NumberLiteral struct {
	Position
	Value string
}

func (n *NumberLiteral) Pos() Position  { return n.Position }
func (n *NumberLiteral) String() string { return n.Value }
func (*NumberLiteral) exprNode()        {}

// BooleanLiteral is  true  or  false.
type BooleanLiteral struct {
	Position
	Value string
}

func (b *BooleanLiteral) Pos() Position  { return b.Position }
func (b *BooleanLiteral) String() string { return b.Value }
func (*BooleanLiteral) exprNode()        {}
