package generator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/token"
)

// Generate prints node as JavaScript source.
func Generate(node ast.VisitableNode) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	if e, ok := s.node.(ast.Expr); ok && precedence(e) < s.prec {
		s.write("(")
		defer s.write(")")
	}

	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for i := range n.Body {
			gen(s.wrap(n.Body[i].Stmt))
			s.line()
		}
	case *ast.Statement:
		gen(s.wrap(n.Stmt))
	case *ast.Expression:
		gen(s.wrapExpr(n, s.prec))

	// Statements

	case *ast.BlockStatement:
		s.block(n.List)
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.DebuggerStatement:
		s.write("debugger;")
	case *ast.ExpressionStatement:
		if startsWithBrace(n.Expression.Expr) {
			s.write("(")
			gen(s.wrapExpr(n.Expression, precSequence))
			s.write(")")
		} else {
			gen(s.wrapExpr(n.Expression, precSequence))
		}
		s.write(";")
	case *ast.IfStatement:
		s.write("if (")
		gen(s.wrapExpr(n.Test, precSequence))
		s.write(") ")
		s.body(n.Consequent)
		if n.Alternate != nil {
			s.write(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				s.body(n.Alternate)
			}
		}
	case *ast.LabelledStatement:
		s.write(n.Label.Name)
		s.write(": ")
		gen(s.wrap(n.Statement.Stmt))
	case *ast.BreakStatement:
		s.jump("break", n.Label)
	case *ast.ContinueStatement:
		s.jump("continue", n.Label)
	case *ast.ReturnStatement:
		s.write("return")
		if n.Argument != nil {
			s.write(" ")
			gen(s.wrapExpr(n.Argument, precSequence))
		}
		s.write(";")
	case *ast.ThrowStatement:
		s.write("throw ")
		gen(s.wrapExpr(n.Argument, precSequence))
		s.write(";")
	case *ast.WhileStatement:
		s.write("while (")
		gen(s.wrapExpr(n.Test, precSequence))
		s.write(") ")
		s.body(n.Body)
	case *ast.DoWhileStatement:
		s.write("do ")
		s.body(n.Body)
		s.write(" while (")
		gen(s.wrapExpr(n.Test, precSequence))
		s.write(");")
	case *ast.ForStatement:
		s.write("for (")
		if n.Initializer != nil {
			switch init := n.Initializer.Initializer.(type) {
			case *ast.VariableDeclaration:
				s.forDeclaration(init)
			case *ast.Expression:
				if containsIn(init.Expr) {
					s.write("(")
					gen(s.wrapExpr(init, precSequence))
					s.write(")")
				} else {
					gen(s.wrapExpr(init, precSequence))
				}
			}
		}
		s.write(";")
		if n.Test != nil {
			s.write(" ")
			gen(s.wrapExpr(n.Test, precSequence))
		}
		s.write(";")
		if n.Update != nil {
			s.write(" ")
			gen(s.wrapExpr(n.Update, precSequence))
		}
		s.write(") ")
		s.body(n.Body)
	case *ast.ForInStatement:
		s.write("for (")
		s.forInto(n.Into)
		s.write(" in ")
		gen(s.wrapExpr(n.Source, precSequence))
		s.write(") ")
		s.body(n.Body)
	case *ast.ForOfStatement:
		s.write("for ")
		if n.Await {
			s.write("await ")
		}
		s.write("(")
		s.forInto(n.Into)
		s.write(" of ")
		gen(s.wrapExpr(n.Source, precAssign))
		s.write(") ")
		s.body(n.Body)
	case *ast.SwitchStatement:
		s.write("switch (")
		gen(s.wrapExpr(n.Discriminant, precSequence))
		s.write(") {")

		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(&n.Body[i]))
		}
		s.indent--

		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.CaseStatement:
		if n.Test != nil {
			s.write("case ")
			gen(s.wrapExpr(n.Test, precSequence))
			s.write(":")
		} else {
			s.write("default:")
		}
		s.indent++
		for i := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(n.Consequent[i].Stmt))
		}
		s.indent--
	case *ast.TryStatement:
		s.write("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.write(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.write(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.CatchStatement:
		s.write("catch ")
		if n.Parameter != nil {
			s.write("(")
			gen(s.wrap(n.Parameter))
			s.write(") ")
		}
		gen(s.wrap(n.Body))
	case *ast.VariableDeclaration:
		s.declaration(n)
		s.write(";")
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))
	case *ast.ImportDeclaration:
		s.importDeclaration(n)
	case *ast.ExportDeclaration:
		s.exportDeclaration(n)
	case *ast.ExportDefaultDeclaration:
		s.write("export default ")
		if n.Declaration != nil {
			gen(s.wrap(n.Declaration.Stmt))
			break
		}
		if startsWithBrace(n.Expression.Expr) {
			s.write("(")
			gen(s.wrapExpr(n.Expression, precSequence))
			s.write(")")
		} else {
			gen(s.wrapExpr(n.Expression, precAssign))
		}
		s.write(";")

	// Binding targets

	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.write(" = ")
			gen(s.wrapExpr(n.Initializer, precAssign))
		}
	case *ast.BindingTarget:
		gen(s.wrap(n.Target))
	case *ast.ArrayPattern:
		s.write("[")
		for i := range n.Elements {
			if i > 0 {
				s.write(", ")
			}
			if n.Elements[i].Target != nil {
				gen(s.wrap(&n.Elements[i]))
			} else if i == len(n.Elements)-1 && n.Rest == nil {
				s.write(",")
			}
		}
		if n.Rest != nil {
			if len(n.Elements) > 0 {
				s.write(", ")
			}
			s.write("...")
			gen(s.wrap(n.Rest))
		}
		s.write("]")
	case *ast.ObjectPattern:
		if len(n.Properties) == 0 && n.Rest == nil {
			s.write("{}")
			break
		}
		s.write("{ ")
		for i := range n.Properties {
			if i > 0 {
				s.write(", ")
			}
			gen(s.wrap(&n.Properties[i]))
		}
		if n.Rest != nil {
			if len(n.Properties) > 0 {
				s.write(", ")
			}
			s.write("...")
			gen(s.wrap(n.Rest))
		}
		s.write(" }")
	case *ast.PatternProperty:
		if id, ok := n.Value.Target.Target.(*ast.Identifier); ok && !n.Computed && ext.PropNameEq(n.Key, id.Name) {
			gen(s.wrap(&n.Value))
			break
		}
		s.propertyKey(n.Key, n.Computed)
		s.write(": ")
		gen(s.wrap(&n.Value))

	// Expressions

	case *ast.Identifier:
		if n != nil {
			s.write(n.Name)
		}
	case *ast.BooleanLiteral:
		s.write(strconv.FormatBool(n.Value))
	case *ast.NullLiteral:
		s.write("null")
	case *ast.NumberLiteral:
		if n.Raw != nil {
			s.write(*n.Raw)
		} else {
			s.write(ext.NumberToString(n.Value))
		}
	case *ast.StringLiteral:
		if n.Raw != nil {
			s.write(*n.Raw)
		} else {
			s.write(quote(n.Value))
		}
	case *ast.RegExpLiteral:
		s.write("/" + n.Pattern + "/" + n.Flags)
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			gen(s.wrapExpr(n.Tag, precCall))
		}
		s.write("`")
		for i, elem := range n.Elements {
			s.write(elem.Literal)
			if i < len(n.Expressions) {
				s.write("${")
				gen(s.wrapExpr(&n.Expressions[i], precSequence))
				s.write("}")
			}
		}
		s.write("`")
	case *ast.ThisExpression:
		s.write("this")
	case *ast.SuperExpression:
		s.write("super")
	case *ast.ArrayLiteral:
		s.write("[")
		for i := range n.Value {
			if i > 0 {
				s.write(", ")
			}
			if n.Value[i].Expr == nil {
				if i == len(n.Value)-1 {
					s.write(",")
				}
				continue
			}
			gen(s.wrapExpr(&n.Value[i], precAssign))
		}
		s.write("]")
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.write("{}")
			break
		}
		s.write("{")

		s.indent++
		for i := range n.Value {
			s.lineAndPad()
			gen(s.wrap(n.Value[i].Prop))
			if i < len(n.Value)-1 {
				s.write(",")
			}
		}
		s.indent--

		s.lineAndPad()
		s.write("}")
	case *ast.PropertyShort:
		s.write(n.Name.Name)
		if n.Initializer != nil {
			s.write(" = ")
			gen(s.wrapExpr(n.Initializer, precAssign))
		}
	case *ast.PropertyKeyed:
		switch n.Kind {
		case ast.PropertyKindGet, ast.PropertyKindSet, ast.PropertyKindMethod:
			fn, ok := n.Value.Expr.(*ast.FunctionLiteral)
			if !ok {
				panic(fmt.Sprintf("gen: %s property with %T value", n.Kind, n.Value.Expr))
			}
			s.method(n.Key, n.Computed, n.Kind, fn, false)
		default:
			s.propertyKey(n.Key, n.Computed)
			s.write(": ")
			gen(s.wrapExpr(n.Value, precAssign))
		}
	case *ast.SpreadElement:
		s.write("...")
		gen(s.wrapExpr(n.Expression, precAssign))
	case *ast.FunctionLiteral:
		if n.Async {
			s.write("async ")
		}
		s.write("function")
		if n.Generator {
			s.write("*")
		}
		if n.Name != nil {
			s.write(" ")
			s.write(n.Name.Name)
		}
		s.params(n.ParameterList)
		s.write(" ")
		gen(s.wrap(n.Body))
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.write("async ")
		}
		s.params(n.ParameterList)
		s.write(" => ")
		switch body := n.Body.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(body))
		case *ast.Expression:
			if startsWithBrace(body.Expr) {
				s.write("(")
				gen(s.wrapExpr(body, precSequence))
				s.write(")")
			} else {
				gen(s.wrapExpr(body, precAssign))
			}
		}
	case *ast.ClassLiteral:
		for i := range n.Decorators {
			s.write("@")
			gen(s.wrapExpr(n.Decorators[i].Expression, precCall))
			s.write(" ")
		}
		s.write("class")
		if n.Name != nil {
			s.write(" ")
			s.write(n.Name.Name)
		}
		if n.SuperClass != nil {
			s.write(" extends ")
			gen(s.wrapExpr(n.SuperClass, precCall))
		}
		if len(n.Body) == 0 {
			s.write(" {}")
			break
		}
		s.write(" {")

		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(n.Body[i].Element))
		}
		s.indent--

		s.lineAndPad()
		s.write("}")
	case *ast.FieldDefinition:
		if n.Static {
			s.write("static ")
		}
		s.propertyKey(n.Key, n.Computed)
		if n.Initializer != nil {
			s.write(" = ")
			gen(s.wrapExpr(n.Initializer, precAssign))
		}
		s.write(";")
	case *ast.MethodDefinition:
		s.method(n.Key, n.Computed, n.Kind, n.Body, n.Static)
	case *ast.ClassStaticBlock:
		s.write("static ")
		gen(s.wrap(n.Block))
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.write(op)
		if len(op) > 1 || needsSpace(n.Operator, n.Operand.Expr) {
			s.write(" ")
		}
		gen(s.wrapExpr(n.Operand, precUnary))
	case *ast.UpdateExpression:
		if n.Postfix {
			gen(s.wrapExpr(n.Operand, precCall))
			s.write(n.Operator.String())
		} else {
			s.write(n.Operator.String())
			gen(s.wrapExpr(n.Operand, precUnary))
		}
	case *ast.AwaitExpression:
		s.write("await ")
		gen(s.wrapExpr(n.Argument, precUnary))
	case *ast.YieldExpression:
		s.write("yield")
		if n.Delegate {
			s.write("*")
		}
		if n.Argument != nil {
			s.write(" ")
			gen(s.wrapExpr(n.Argument, precAssign))
		}
	case *ast.BinaryExpression:
		p := binaryPrecedence(n.Operator)
		left, right := p, p+1
		if n.Operator == token.Exponent {
			// Right associative, and a unary left operand is a syntax
			// error.
			left, right = precPostfix, p
		}
		s.operand(n.Operator, n.Left, left)
		s.write(" " + n.Operator.String() + " ")
		s.operand(n.Operator, n.Right, right)
	case *ast.AssignExpression:
		gen(s.wrapExpr(n.Left, precCall))
		s.write(" " + n.Operator.String() + " ")
		gen(s.wrapExpr(n.Right, precAssign))
	case *ast.ConditionalExpression:
		gen(s.wrapExpr(n.Test, precConditional+1))
		s.write(" ? ")
		gen(s.wrapExpr(n.Consequent, precAssign))
		s.write(" : ")
		gen(s.wrapExpr(n.Alternate, precAssign))
	case *ast.SequenceExpression:
		for i := range n.Sequence {
			if i > 0 {
				s.write(", ")
			}
			gen(s.wrapExpr(&n.Sequence[i], precAssign))
		}
	case *ast.CallExpression:
		gen(s.wrapExpr(n.Callee, precCall))
		if n.Optional {
			s.write("?.")
		}
		s.arguments(n.ArgumentList)
	case *ast.NewExpression:
		s.write("new ")
		if _, ok := n.Callee.Expr.(*ast.CallExpression); ok || containsCall(n.Callee.Expr) {
			s.write("(")
			gen(s.wrapExpr(n.Callee, precSequence))
			s.write(")")
		} else {
			gen(s.wrapExpr(n.Callee, precCall))
		}
		s.arguments(n.ArgumentList)
	case *ast.MemberExpression:
		if num, ok := n.Object.Expr.(*ast.NumberLiteral); ok && isBareInteger(num) {
			s.write("(")
			gen(s.wrapExpr(n.Object, precSequence))
			s.write(")")
		} else {
			gen(s.wrapExpr(n.Object, precCall))
		}
		switch p := n.Property.Prop.(type) {
		case *ast.Identifier:
			if n.Optional {
				s.write("?.")
			} else {
				s.write(".")
			}
			s.write(p.Name)
		case *ast.ComputedProperty:
			if n.Optional {
				s.write("?.")
			}
			s.write("[")
			gen(s.wrapExpr(p.Expr, precSequence))
			s.write("]")
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func (s *state) block(list ast.Statements) {
	if len(list) == 0 {
		s.write("{}")
		return
	}
	s.write("{")

	s.indent++
	for i := range list {
		s.lineAndPad()
		gen(s.wrap(list[i].Stmt))
	}
	s.indent--

	s.lineAndPad()
	s.write("}")
}

// body prints the statement of an if or loop, always in braces.
func (s *state) body(n *ast.Statement) {
	switch n.Stmt.(type) {
	case *ast.BlockStatement, *ast.EmptyStatement:
		gen(s.wrap(n.Stmt))
	default:
		s.block(ast.Statements{*n})
	}
}

func (s *state) jump(keyword string, label *ast.Identifier) {
	s.write(keyword)
	if label != nil {
		s.write(" ")
		s.write(label.Name)
	}
	s.write(";")
}

func (s *state) declaration(n *ast.VariableDeclaration) {
	s.write(n.Token.String())
	s.write(" ")
	for i := range n.List {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrap(&n.List[i]))
	}
}

// forDeclaration prints the declaration of a for loop head, where a bare in
// operator would start a for-in loop.
func (s *state) forDeclaration(n *ast.VariableDeclaration) {
	s.write(n.Token.String())
	s.write(" ")
	for i := range n.List {
		if i > 0 {
			s.write(", ")
		}
		d := &n.List[i]
		gen(s.wrap(d.Target))
		if d.Initializer == nil {
			continue
		}
		s.write(" = ")
		if containsIn(d.Initializer.Expr) {
			s.write("(")
			gen(s.wrapExpr(d.Initializer, precSequence))
			s.write(")")
		} else {
			gen(s.wrapExpr(d.Initializer, precAssign))
		}
	}
}

func (s *state) forInto(n *ast.ForInto) {
	switch into := n.Into.(type) {
	case *ast.VariableDeclaration:
		s.declaration(into)
	case *ast.Expression:
		gen(s.wrapExpr(into, precCall))
	}
}

func (s *state) params(n *ast.ParameterList) {
	s.write("(")
	for i := range n.List {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrap(&n.List[i]))
	}
	if n.Rest != nil {
		if len(n.List) > 0 {
			s.write(", ")
		}
		s.write("...")
		gen(s.wrap(n.Rest))
	}
	s.write(")")
}

func (s *state) arguments(list ast.Expressions) {
	s.write("(")
	for i := range list {
		if i > 0 {
			s.write(", ")
		}
		gen(s.wrapExpr(&list[i], precAssign))
	}
	s.write(")")
}

// operand prints one side of a binary expression. Mixing ?? with && or ||
// requires parentheses regardless of precedence.
func (s *state) operand(op token.Token, n *ast.Expression, prec int) {
	if b, ok := n.Expr.(*ast.BinaryExpression); ok {
		mixed := op == token.Coalesce && (b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr) ||
			b.Operator == token.Coalesce && (op == token.LogicalAnd || op == token.LogicalOr)
		if mixed {
			prec = precPrimary
		}
	}
	gen(s.wrapExpr(n, prec))
}

func (s *state) propertyKey(key *ast.Expression, computed bool) {
	if computed {
		s.write("[")
		gen(s.wrapExpr(key, precAssign))
		s.write("]")
		return
	}
	gen(s.wrapExpr(key, precPrimary))
}

func (s *state) method(key *ast.Expression, computed bool, kind ast.PropertyKind, fn *ast.FunctionLiteral, static bool) {
	if static {
		s.write("static ")
	}
	switch kind {
	case ast.PropertyKindGet, ast.PropertyKindSet:
		s.write(string(kind))
		s.write(" ")
	}
	if fn.Async {
		s.write("async ")
	}
	if fn.Generator {
		s.write("*")
	}
	s.propertyKey(key, computed)
	s.params(fn.ParameterList)
	s.write(" ")
	gen(s.wrap(fn.Body))
}

func (s *state) importDeclaration(n *ast.ImportDeclaration) {
	s.write("import ")
	if len(n.Specifiers) == 0 {
		gen(s.wrap(n.Source))
		s.write(";")
		return
	}

	var named []ast.ImportSpecifier
	first := true
	for _, spec := range n.Specifiers {
		switch spec.Imported {
		case "default":
			s.write(spec.Local.Name)
		case "*":
			if !first {
				s.write(", ")
			}
			s.write("* as ")
			s.write(spec.Local.Name)
		default:
			named = append(named, spec)
			continue
		}
		first = false
	}
	if len(named) > 0 {
		if !first {
			s.write(", ")
		}
		s.write("{ ")
		for i, spec := range named {
			if i > 0 {
				s.write(", ")
			}
			if spec.Imported != spec.Local.Name {
				s.write(moduleExportName(spec.Imported))
				s.write(" as ")
			}
			s.write(spec.Local.Name)
		}
		s.write(" }")
	}
	s.write(" from ")
	gen(s.wrap(n.Source))
	s.write(";")
}

func (s *state) exportDeclaration(n *ast.ExportDeclaration) {
	s.write("export ")
	if n.Declaration != nil {
		gen(s.wrap(n.Declaration.Stmt))
		return
	}

	if n.Namespace {
		s.write("*")
		if len(n.Specifiers) > 0 {
			s.write(" as ")
			s.write(moduleExportName(n.Specifiers[0].Exported))
		}
	} else if len(n.Specifiers) == 0 {
		s.write("{}")
	} else {
		s.write("{ ")
		for i, spec := range n.Specifiers {
			if i > 0 {
				s.write(", ")
			}
			s.write(spec.Local.Name)
			if spec.Exported != spec.Local.Name {
				s.write(" as ")
				s.write(moduleExportName(spec.Exported))
			}
		}
		s.write(" }")
	}
	if n.Source != nil {
		s.write(" from ")
		gen(s.wrap(n.Source))
	}
	s.write(";")
}

// needsSpace returns true if printing operand right after op would fuse
// into a different token, as in - -x or + ++x.
func needsSpace(op token.Token, operand ast.Expr) bool {
	if op != token.Plus && op != token.Minus {
		return false
	}
	var next token.Token
	switch e := operand.(type) {
	case *ast.UnaryExpression:
		next = e.Operator
	case *ast.UpdateExpression:
		if e.Postfix {
			return false
		}
		next = e.Operator
	case *ast.NumberLiteral:
		return e.Value < 0 && op == token.Minus
	default:
		return false
	}
	switch op {
	case token.Plus:
		return next == token.Plus || next == token.Increment
	default:
		return next == token.Minus || next == token.Decrement
	}
}

func containsCall(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object.Expr
		case *ast.TemplateLiteral:
			if n.Tag == nil {
				return false
			}
			e = n.Tag.Expr
		default:
			return false
		}
	}
}

// containsIn returns true if e has an in operator outside of brackets.
func containsIn(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		return n.Operator == token.In || containsIn(n.Left.Expr) || containsIn(n.Right.Expr)
	case *ast.AssignExpression:
		return containsIn(n.Left.Expr) || containsIn(n.Right.Expr)
	case *ast.ConditionalExpression:
		return containsIn(n.Test.Expr) || containsIn(n.Consequent.Expr) || containsIn(n.Alternate.Expr)
	case *ast.SequenceExpression:
		for i := range n.Sequence {
			if containsIn(n.Sequence[i].Expr) {
				return true
			}
		}
	case *ast.UnaryExpression:
		return containsIn(n.Operand.Expr)
	case *ast.AwaitExpression:
		return containsIn(n.Argument.Expr)
	case *ast.YieldExpression:
		return n.Argument != nil && containsIn(n.Argument.Expr)
	case *ast.ArrowFunctionLiteral:
		if body, ok := n.Body.Body.(*ast.Expression); ok {
			return containsIn(body.Expr)
		}
	case *ast.MemberExpression:
		return containsIn(n.Object.Expr)
	case *ast.CallExpression:
		return containsIn(n.Callee.Expr)
	}
	return false
}

func isBareInteger(n *ast.NumberLiteral) bool {
	text := ext.NumberToString(n.Value)
	if n.Raw != nil {
		text = *n.Raw
	}
	return !strings.ContainsAny(text, ".eExXoObB")
}

func moduleExportName(name string) string {
	if validIdentifier(name) {
		return name
	}
	return quote(name)
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func quote(str string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i, r := range str {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			if r == utf8.RuneError && len(str[i:]) > 0 {
				if _, size := utf8.DecodeRuneInString(str[i:]); size == 1 {
					fmt.Fprintf(&sb, `\x%02x`, str[i])
					continue
				}
			}
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\x%02x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
