package resolver

import (
	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/token"
)

const (
	UnresolvedMark ast.ScopeContext = 0
	TopLevelMark   ast.ScopeContext = 1
)

type phase int

const (
	// phaseHoist creates every scope and binding.
	phaseHoist phase = iota
	// phaseResolve binds references to the hoisted declarations.
	phaseResolve
)

// Resolver walks a program twice, first hoisting declarations into their
// scopes, then resolving each reference against the finished scope chain.
type Resolver struct {
	ast.NoopVisitor

	info    *Info
	phase   phase
	current *Scope

	nextMark ast.ScopeContext

	// writing is set while visiting an assignment target.
	writing bool
	// forHead is set while visiting the left side of a for-in/of.
	forHead bool
	// export is the export declaration whose declaration is being visited.
	export ast.VisitableNode
	// declarator and container describe the variable declaration being
	// visited.
	declarator *ast.VariableDeclarator
	container  ast.VisitableNode
}

// Resolve computes the scopes and bindings of p and stamps every
// identifier with the ScopeContext of its declaring scope.
func Resolve(p *ast.Program) *Info {
	r := &Resolver{
		info:     newInfo(),
		nextMark: TopLevelMark,
	}
	r.V = r

	p.VisitWith(r)
	r.phase = phaseResolve
	p.VisitWith(r)
	return r.info
}

func (r *Resolver) pushScope(node ast.VisitableNode, kind ScopeKind) {
	if r.phase == phaseHoist {
		s := newScope(r.current, kind, node, r.nextMark)
		r.nextMark++
		r.info.scopes[node] = s
		r.current = s
		return
	}
	r.current = r.info.scopes[node]
}

func (r *Resolver) popScope() {
	if r.current.Parent != nil {
		r.current = r.current.Parent
	}
}

func (r *Resolver) VisitProgram(n *ast.Program) {
	r.pushScope(n, ScopeKindProgram)
	r.info.Program = r.current
	n.VisitChildrenWith(r)
}

func (r *Resolver) VisitIdentifier(n *ast.Identifier) {
	if r.phase == phaseHoist {
		return
	}

	b := r.current.Lookup(n.Name)
	if b == nil {
		n.ScopeContext = UnresolvedMark
		return
	}
	n.ScopeContext = b.Scope.Mark

	b.References++
	r.info.refs[n] = b
	r.info.refScopes[n] = r.current
	if r.writing {
		b.Constant = false
	} else if !b.initialized {
		b.ForwardReferenced = true
	}
}

func (r *Resolver) VisitBlockStatement(n *ast.BlockStatement) {
	r.pushScope(n, ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitCatchStatement(n *ast.CatchStatement) {
	r.pushScope(n, ScopeKindBlock)
	if n.Parameter != nil {
		r.container = nil
		r.pattern(n.Parameter, KindCatch, n)
	}
	n.Body.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Discriminant.VisitWith(r)
	r.pushScope(n, ScopeKindBlock)
	for i := range n.Body {
		n.Body[i].VisitWith(r)
	}
	r.popScope()
}

func (r *Resolver) VisitWhileStatement(n *ast.WhileStatement) {
	r.pushScope(n, ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	r.pushScope(n, ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitForStatement(n *ast.ForStatement) {
	r.pushScope(n, ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitForInStatement(n *ast.ForInStatement) {
	r.pushScope(n, ScopeKindBlock)
	r.forInto(n.Into)
	n.Source.VisitWith(r)
	n.Body.VisitWith(r)
	r.popScope()
}

func (r *Resolver) VisitForOfStatement(n *ast.ForOfStatement) {
	r.pushScope(n, ScopeKindBlock)
	r.forInto(n.Into)
	n.Source.VisitWith(r)
	n.Body.VisitWith(r)
	r.popScope()
}

func (r *Resolver) forInto(n *ast.ForInto) {
	old := r.forHead
	r.forHead = true
	if expr, ok := n.Into.(*ast.Expression); ok {
		r.assignTarget(expr)
	} else {
		n.VisitWith(r)
	}
	r.forHead = old
}

// Labels are not bindings.

func (r *Resolver) VisitBreakStatement(*ast.BreakStatement) {}

func (r *Resolver) VisitContinueStatement(*ast.ContinueStatement) {}

func (r *Resolver) VisitLabelledStatement(n *ast.LabelledStatement) {
	n.Statement.VisitWith(r)
}

func (r *Resolver) VisitAssignExpression(n *ast.AssignExpression) {
	r.assignTarget(n.Left)
	old := r.writing
	r.writing = false
	n.Right.VisitWith(r)
	r.writing = old
}

func (r *Resolver) VisitUpdateExpression(n *ast.UpdateExpression) {
	r.assignTarget(n.Operand)
}

func (r *Resolver) assignTarget(n *ast.Expression) {
	old := r.writing
	r.writing = true
	n.VisitWith(r)
	r.writing = old
}

func (r *Resolver) VisitMemberExpression(n *ast.MemberExpression) {
	old := r.writing
	r.writing = false
	n.Object.VisitWith(r)
	if c, ok := n.Property.Prop.(*ast.ComputedProperty); ok {
		c.VisitWith(r)
	}
	r.writing = old
}

func (r *Resolver) VisitCallExpression(n *ast.CallExpression) {
	old := r.writing
	r.writing = false
	n.VisitChildrenWith(r)
	r.writing = old

	if r.phase == phaseResolve {
		if id, ok := n.Callee.Expr.(*ast.Identifier); ok && id.Name == "eval" && id.ScopeContext == UnresolvedMark {
			for s := r.current; s != nil; s = s.Parent {
				s.DirectEval = true
			}
		}
	}
}

func (r *Resolver) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	if n.Computed {
		old := r.writing
		r.writing = false
		n.Key.VisitWith(r)
		r.writing = old
	}
	n.Value.VisitWith(r)
}

func (r *Resolver) VisitPropertyShort(n *ast.PropertyShort) {
	n.Name.VisitWith(r)
	if n.Initializer != nil {
		old := r.writing
		r.writing = false
		n.Initializer.VisitWith(r)
		r.writing = old
	}
}

func (r *Resolver) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	r.function(n, true)
}

func (r *Resolver) function(n *ast.FunctionLiteral, local bool) {
	old := r.writing
	r.writing = false
	r.pushScope(n, ScopeKindFunction)
	if local && n.Name != nil {
		r.declare(n.Name, KindLocal, n)
	}
	r.params(n.ParameterList, n)
	n.Body.VisitChildrenWith(r)
	r.popScope()
	r.writing = old
}

func (r *Resolver) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	old := r.writing
	r.writing = false
	r.pushScope(n, ScopeKindFunction)
	r.params(n.ParameterList, n)
	if block, ok := n.Body.Body.(*ast.BlockStatement); ok {
		block.VisitChildrenWith(r)
	} else {
		n.Body.VisitWith(r)
	}
	r.popScope()
	r.writing = old
}

func (r *Resolver) params(n *ast.ParameterList, fn ast.VisitableNode) {
	r.container = nil
	for i := range n.List {
		r.element(&n.List[i], KindParam, fn)
	}
	if n.Rest != nil {
		r.pattern(n.Rest, KindParam, fn)
	}
}

func (r *Resolver) VisitClassLiteral(n *ast.ClassLiteral) {
	r.class(n, true)
}

func (r *Resolver) class(n *ast.ClassLiteral, local bool) {
	old := r.writing
	r.writing = false
	for i := range n.Decorators {
		n.Decorators[i].VisitWith(r)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(r)
	}
	r.pushScope(n, ScopeKindClass)
	if local && n.Name != nil {
		r.declare(n.Name, KindLocal, n)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(r)
	}
	r.popScope()
	r.writing = old
}

func (r *Resolver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	r.container = r.export
	r.export = nil
	if n.Function.Name != nil {
		r.declare(n.Function.Name, KindFunction, n)
	}
	r.function(n.Function, false)
}

func (r *Resolver) VisitClassDeclaration(n *ast.ClassDeclaration) {
	container := r.export
	r.export = nil
	r.class(n.Class, false)
	if n.Class.Name != nil {
		r.container = container
		r.declare(n.Class.Name, KindClass, n)
	}
}

func (r *Resolver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	kind := KindVar
	switch n.Token {
	case token.Let:
		kind = KindLet
	case token.Const:
		kind = KindConst
	}

	exported := r.export != nil
	r.export = nil
	for i := range n.List {
		d := &n.List[i]
		if d.Initializer != nil {
			d.Initializer.VisitWith(r)
		}
		r.container = n
		r.declarator = d
		r.pattern(d.Target, kind, d)
		r.declarator = nil
		if exported {
			r.markExported(d.Target)
		}
	}
}

func (r *Resolver) VisitImportDeclaration(n *ast.ImportDeclaration) {
	for i := range n.Specifiers {
		r.container = n
		r.declare(n.Specifiers[i].Local, KindModule, n)
	}
}

func (r *Resolver) VisitExportDeclaration(n *ast.ExportDeclaration) {
	if n.Declaration != nil {
		r.export = n
		n.Declaration.VisitWith(r)
		r.export = nil
	}
	if n.Source != nil || r.phase == phaseHoist {
		return
	}
	for i := range n.Specifiers {
		local := n.Specifiers[i].Local
		local.VisitWith(r)
		if b := r.info.refs[local]; b != nil {
			b.Exported = true
		}
	}
}

func (r *Resolver) VisitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	if n.Declaration != nil {
		r.export = n
		n.Declaration.VisitWith(r)
		r.export = nil
	}
	if n.Expression != nil {
		n.Expression.VisitWith(r)
	}
}
