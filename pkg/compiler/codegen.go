package compiler

import (
	"fmt"

	"gengar/pkg/sourcemap"
)

// prelude is emitted once at the top of every program. It is synthesized
// text with no source origin, so it stays out of the map.
const prelude = "function print(...args){\n  console.log(...args);\n}\n"

// CodeGen walks the AST and emits JavaScript as sourcemap fragments.
// Every fragment carries the originating node's position, so the
// concatenated output yields both the code text and its map.
type CodeGen struct{}

// Generate emits the whole program as a fragment tree.
func Generate(prog *Program) (*sourcemap.Node, error) {
	cg := &CodeGen{}
	root := sourcemap.NewRoot()
	root.Add(prelude)
	for _, stmt := range prog.Body {
		frag, err := cg.genStmt(stmt)
		if err != nil {
			return nil, err
		}
		root.Add(frag)
	}
	return root, nil
}

// node opens a fragment anchored at n's source position.
func (cg *CodeGen) node(n Node) *sourcemap.Node {
	pos := n.Pos()
	return sourcemap.NewNode(int(pos.Line), int(pos.Col), pos.File)
}

func (cg *CodeGen) genStmt(s Stmt) (*sourcemap.Node, error) {
	switch n := s.(type) {
	case *MainDeclare:
		f := cg.node(n)
		f.Add(";(function()")
		body, err := cg.genStmt(n.Body)
		if err != nil {
			return nil, err
		}
		f.Add(body, ")();\n")
		return f, nil

	case *FunctionDeclare:
		f := cg.node(n)
		name, err := cg.genExpr(n.Name)
		if err != nil {
			return nil, err
		}
		f.Add("function ", name, "(")
		for i, param := range n.Params {
			if i > 0 {
				f.Add(", ")
			}
			pn, err := cg.genExpr(param.Name)
			if err != nil {
				return nil, err
			}
			f.Add(pn)
		}
		body, err := cg.genStmt(n.Body)
		if err != nil {
			return nil, err
		}
		f.Add(") ", body)
		return f, nil

	case *BlockStatement:
		f := cg.node(n)
		f.Add("{\n")
		for _, stmt := range n.Body {
			frag, err := cg.genStmt(stmt)
			if err != nil {
				return nil, err
			}
			f.Add(frag)
		}
		f.Add("\n}")
		return f, nil

	case *VarDeclare:
		f := cg.node(n)
		if n.Kind == "mut" {
			f.Add("let ")
		} else {
			f.Add("const ")
		}
		name, err := cg.genExpr(n.Name)
		if err != nil {
			return nil, err
		}
		init, err := cg.genExpr(n.Init)
		if err != nil {
			return nil, err
		}
		// The annotation, if any, is dropped: the target has no types.
		f.Add(name, "=", init, ";")
		return f, nil

	case *IfStatement:
		return cg.genIf(n, true)

	case *WhileStatement:
		f := cg.node(n)
		test, err := cg.genExpr(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := cg.genStmt(n.Body)
		if err != nil {
			return nil, err
		}
		f.Add("while(", test, ")", body)
		return f, nil

	case *ReturnStatement:
		f := cg.node(n)
		arg, err := cg.genExpr(n.Argument)
		if err != nil {
			return nil, err
		}
		f.Add("\nreturn (", arg, ");")
		return f, nil

	case *DebuggerStatement:
		f := cg.node(n)
		f.Add("\ndebugger;")
		return f, nil

	case *ExpressionStatement:
		f := cg.node(n)
		expr, err := cg.genExpr(n.Expression)
		if err != nil {
			return nil, err
		}
		f.Add(expr, ";")
		return f, nil

	default:
		return nil, &EmissionError{Msg: fmt.Sprintf("unknown statement node %T", s), Node: s}
	}
}

// genIf emits an if/else chain. Nested else-if statements suppress the
// leading newline so the chain reads "}else if(".
func (cg *CodeGen) genIf(n *IfStatement, leadingNewline bool) (*sourcemap.Node, error) {
	f := cg.node(n)
	if leadingNewline {
		f.Add("\n")
	}
	test, err := cg.genExpr(n.Test)
	if err != nil {
		return nil, err
	}
	consequent, err := cg.genStmt(n.Consequent)
	if err != nil {
		return nil, err
	}
	f.Add("if(", test, ")", consequent)

	if n.Alternate != nil {
		f.Add("else ")
		var alt *sourcemap.Node
		if chained, ok := n.Alternate.(*IfStatement); ok {
			alt, err = cg.genIf(chained, false)
		} else {
			alt, err = cg.genStmt(n.Alternate)
		}
		if err != nil {
			return nil, err
		}
		f.Add(alt)
	}
	return f, nil
}

func (cg *CodeGen) genExpr(e Expr) (*sourcemap.Node, error) {
	switch n := e.(type) {
	case *AssignExpression:
		if n.Target == nil || n.Value == nil {
			return nil, &EmissionError{Msg: "assignment with missing operand", Node: n}
		}
		f := cg.node(n)
		target, err := cg.genExpr(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := cg.genExpr(n.Value)
		if err != nil {
			return nil, err
		}
		f.Add(target, " "+n.Operator+" ", value)
		return f, nil

	case *BinaryExpression:
		if n.Left == nil {
			return nil, &EmissionError{Msg: "binary expression with no left operand", Node: n}
		}
		if n.Right == nil {
			return nil, &EmissionError{Msg: "binary expression with no right operand", Node: n}
		}
		f := cg.node(n)
		left, err := cg.genExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := cg.genExpr(n.Right)
		if err != nil {
			return nil, err
		}
		f.Add(left, " "+n.Operator+" ", right)
		return f, nil

	case *UnaryExpression:
		if n.Operand == nil {
			return nil, &EmissionError{Msg: "unary expression with no operand", Node: n}
		}
		f := cg.node(n)
		operand, err := cg.genExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		f.Add(n.Operator, operand)
		return f, nil

	case *ConditionalExpression:
		if n.Test == nil || n.Consequent == nil || n.Alternate == nil {
			return nil, &EmissionError{Msg: "conditional expression with missing branch", Node: n}
		}
		f := cg.node(n)
		test, err := cg.genExpr(n.Test)
		if err != nil {
			return nil, err
		}
		consequent, err := cg.genExpr(n.Consequent)
		if err != nil {
			return nil, err
		}
		alternate, err := cg.genExpr(n.Alternate)
		if err != nil {
			return nil, err
		}
		f.Add(test, " ? ", consequent, " : ", alternate)
		return f, nil

	case *CallExpression:
		f := cg.node(n)
		callee, err := cg.genExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		f.Add(callee, "(")
		for i, arg := range n.Args {
			if i > 0 {
				f.Add(", ")
			}
			a, err := cg.genExpr(arg)
			if err != nil {
				return nil, err
			}
			f.Add(a)
		}
		f.Add(")")
		return f, nil

	case *MemberExpression:
		f := cg.node(n)
		object, err := cg.genExpr(n.Object)
		if err != nil {
			return nil, err
		}
		property, err := cg.genExpr(n.Property)
		if err != nil {
			return nil, err
		}
		f.Add(object, ".", property)
		return f, nil

	case *Identifier:
		return cg.node(n).Add(n.Name), nil
	case *StringLiteral:
		return cg.node(n).Add(n.Value), nil
	case *NumberLiteral:
		return cg.node(n).Add(n.Value), nil
	case *BooleanLiteral:
		return cg.node(n).Add(n.Value), nil

	default:
		return nil, &EmissionError{Msg: fmt.Sprintf("unknown expression node %T", e), Node: e}
	}
}
