// Package deadcode removes code that can never run or whose result is
// never observed: single use constants are inlined, unreferenced
// declarations are dropped, constant conditions are folded, statements
// after a completion are pruned and if statements with empty branches are
// normalized. The rules feed each other, so Eliminate repeats them until
// the program stops changing.
package deadcode

import (
	"io"
	"log/slog"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/resolver"
	"github.com/t14raptor/jsdce/token"
)

// Eliminate removes dead code from p in place. The program is resolved
// again before every iteration so that binding facts describe the current
// tree.
func Eliminate(p *ast.Program, opts Options) Stats {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var stats Stats
	for {
		if opts.MaxIterations > 0 && stats.Iterations >= opts.MaxIterations {
			logger.Debug("iteration limit reached", "limit", opts.MaxIterations)
			break
		}
		stats.Iterations++

		info := resolver.Resolve(p)
		e := newEliminator(info, logger.With("iteration", stats.Iterations), &stats)
		e.cyclic = collectCycles(p, info)
		p.VisitWith(e)
		sweep(p, e.dead)

		if !e.changed {
			break
		}
	}

	logger.Debug("dead code eliminated",
		"iterations", stats.Iterations,
		"inlined", stats.Inlined,
		"removed", stats.DeclarationsRemoved,
		"folded", stats.ConditionsFolded,
		"pruned", stats.StatementsPruned,
		"normalized", stats.ConditionalsNormalized,
	)
	return stats
}

type eliminator struct {
	ast.NoopVisitor

	info    *resolver.Info
	log     *slog.Logger
	stats   *Stats
	changed bool

	// dead holds declarators and declarations detached during this
	// iteration. They stay in the tree until sweep so that the nodes
	// recorded in bindings keep pointing at the right declarations.
	dead map[ast.VisitableNode]bool
	// released holds references whose binding count was decremented.
	released map[*ast.Identifier]bool
	// moved holds the identifiers of inlined values. Their resolved scope
	// is stale until the next iteration.
	moved map[*ast.Identifier]bool
	// listed holds the variable declarations that are direct elements of
	// a reachable statement list.
	listed map[*ast.VariableDeclaration]bool
	// cyclic holds bindings only referenced from declarations that are
	// themselves unreachable.
	cyclic map[*resolver.Binding]bool

	// slot is the operand whose meaning depends on it being a reference,
	// and position says how.
	slot     *ast.Expression
	position position
}

// position is the role of an operand that sees references rather than
// values.
type position int

const (
	positionValue position = iota
	// positionCallee is a call callee or template tag. A member passes its
	// object as this and eval called by name is direct.
	positionCallee
	// positionDelete is the operand of delete, which removes a reference.
	positionDelete
	// positionTypeof is the operand of typeof, which accepts an undeclared
	// name.
	positionTypeof
)

func newEliminator(info *resolver.Info, log *slog.Logger, stats *Stats) *eliminator {
	e := &eliminator{
		info:     info,
		log:      log,
		stats:    stats,
		dead:     make(map[ast.VisitableNode]bool),
		released: make(map[*ast.Identifier]bool),
		moved:    make(map[*ast.Identifier]bool),
		listed:   make(map[*ast.VariableDeclaration]bool),
	}
	e.V = e
	return e
}

// record counts a rewrite and marks the iteration as changed.
func (e *eliminator) record(counter *int, rule string, args ...any) {
	*counter++
	e.changed = true
	e.log.Debug("rewrite", append([]any{"rule", rule}, args...)...)
}

// ConstantRef implements ext.Facts.
func (e *eliminator) ConstantRef(id *ast.Identifier) bool {
	b := e.info.BindingOf(id)
	return b != nil && b.Constant && !b.ForwardReferenced
}

// PrimitiveRef implements ext.Facts.
func (e *eliminator) PrimitiveRef(id *ast.Identifier) bool {
	if !e.ConstantRef(id) {
		return false
	}
	d, ok := e.info.BindingOf(id).Node.(*ast.VariableDeclarator)
	if !ok {
		return false
	}
	if _, ok := d.Target.Target.(*ast.Identifier); !ok {
		return false
	}
	return ext.IsPrimitiveConstant(d.Initializer, e)
}

func (e *eliminator) VisitStatements(n *ast.Statements) {
	list := *n
	out := make(ast.Statements, 0, len(list))
	purge := false
	for i := range list {
		stmt := &list[i]

		var reduced ast.Statements
		switch {
		case e.dead[stmt.Stmt]:
			// Inlined before the traversal reached it, sweep drops it.
			reduced = ast.Statements{*stmt}
		case purge:
			reduced = e.unreachable(stmt)
		default:
			if decl, ok := stmt.Stmt.(*ast.VariableDeclaration); ok {
				e.listed[decl] = true
			}
			reduced = e.reduce(stmt)
		}

		for _, s := range reduced {
			if isEmpty(s.Stmt) {
				continue
			}
			out = append(out, s)
			if ast.IsCompletionStatement(s.Stmt) {
				purge = true
			}
		}
	}
	clear(list)
	*n = out
}

// VisitStatement reduces a statement that is not part of a list, such as
// the body of a loop or a branch of an if statement.
func (e *eliminator) VisitStatement(n *ast.Statement) {
	list := e.reduce(n)
	switch len(list) {
	case 0:
		n.Stmt = &ast.EmptyStatement{}
	case 1:
		n.Stmt = list[0].Stmt
	default:
		n.Stmt = &ast.BlockStatement{List: list}
	}
}

// reduce applies the statement rules to n after visiting its children and
// returns the statements replacing it.
func (e *eliminator) reduce(n *ast.Statement) ast.Statements {
	if e.removeDeclaration(n) {
		return nil
	}
	n.VisitChildrenWith(e)
	if e.removeDeclaration(n) {
		return nil
	}

	switch s := n.Stmt.(type) {
	case *ast.IfStatement:
		return e.foldIf(n, s)
	case *ast.EmptyStatement:
		return nil
	}
	return ast.Statements{*n}
}

func (e *eliminator) VisitExpression(n *ast.Expression) {
	pos := positionValue
	if e.slot == n {
		pos = e.position
	}
	e.slot = nil
	n.VisitChildrenWith(e)

	switch expr := n.Expr.(type) {
	case *ast.Identifier:
		if value := e.inline(expr); value != nil {
			n.Expr = value.Expr
		}
	case *ast.ConditionalExpression:
		e.foldConditional(n, expr, pos)
	}
}

func (e *eliminator) VisitCallExpression(n *ast.CallExpression) {
	e.mark(n.Callee, positionCallee)
	n.Callee.VisitWith(e)
	n.ArgumentList.VisitWith(e)
}

func (e *eliminator) VisitTemplateLiteral(n *ast.TemplateLiteral) {
	e.mark(n.Tag, positionCallee)
	n.VisitChildrenWith(e)
}

// mark records slot as the next expression visited in pos.
func (e *eliminator) mark(slot *ast.Expression, pos position) {
	e.slot, e.position = slot, pos
}

func (e *eliminator) VisitProperty(n *ast.Property) {
	n.VisitChildrenWith(e)

	short, ok := n.Prop.(*ast.PropertyShort)
	if !ok || short.Initializer != nil {
		return
	}
	if value := e.inline(short.Name); value != nil {
		n.Prop = &ast.PropertyKeyed{
			Key:   &ast.Expression{Expr: &ast.Identifier{Name: short.Name.Name}},
			Kind:  ast.PropertyKindValue,
			Value: value,
		}
	}
}

// The operand of delete is never inlined, deleting a binding and
// deleting a value do not return the same result.
func (e *eliminator) VisitUnaryExpression(n *ast.UnaryExpression) {
	switch n.Operator {
	case token.Delete:
		if _, ok := n.Operand.Expr.(*ast.Identifier); ok {
			return
		}
		e.mark(n.Operand, positionDelete)
	case token.Typeof:
		e.mark(n.Operand, positionTypeof)
	}
	n.VisitChildrenWith(e)
}

func (e *eliminator) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	if e.dead[n] {
		return
	}
	n.VisitChildrenWith(e)
}

func (e *eliminator) VisitForLoopInitializer(n *ast.ForLoopInitializer) {
	n.VisitChildrenWith(e)
	if decl, ok := n.Initializer.(*ast.VariableDeclaration); ok {
		e.removeDeclarators(decl)
	}
}

// isEmpty returns true for statements that do nothing: an empty statement
// or a block without statements.
func isEmpty(s ast.Stmt) bool {
	switch s := s.(type) {
	case *ast.EmptyStatement:
		return true
	case *ast.BlockStatement:
		return len(s.List) == 0
	}
	return false
}
