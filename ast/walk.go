package ast

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	n.Consequent.VisitWith(v)
}

func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		n.Parameter.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *DebuggerStatement) VisitChildrenWith(Visitor) {}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitChildrenWith(Visitor) {}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ForLoopInitializer) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForInto) VisitChildrenWith(v Visitor) {
	if n.Into != nil {
		n.Into.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	if n.Target != nil {
		n.Target.VisitWith(v)
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *BindingTarget) VisitChildrenWith(v Visitor) {
	if n.Target != nil {
		n.Target.VisitWith(v)
	}
}

func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Elements {
		n.Elements[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Properties {
		n.Properties[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *PatternProperty) VisitChildrenWith(v Visitor) {
	if n.Computed {
		n.Key.VisitWith(v)
	}
	n.Value.VisitWith(v)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.Specifiers {
		n.Specifiers[i].VisitWith(v)
	}
	n.Source.VisitWith(v)
}

func (n *ImportSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ExportDeclaration) VisitChildrenWith(v Visitor) {
	if n.Declaration != nil {
		n.Declaration.VisitWith(v)
	}
	for i := range n.Specifiers {
		n.Specifiers[i].VisitWith(v)
	}
	if n.Source != nil {
		n.Source.VisitWith(v)
	}
}

func (n *ExportSpecifier) VisitChildrenWith(v Visitor) {
	if n.Local != nil {
		n.Local.VisitWith(v)
	}
}

func (n *ExportDefaultDeclaration) VisitChildrenWith(v Visitor) {
	if n.Declaration != nil {
		n.Declaration.VisitWith(v)
	}
	if n.Expression != nil {
		n.Expression.VisitWith(v)
	}
}

func (n *Identifier) VisitChildrenWith(Visitor) {}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *MemberProperty) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *ComputedProperty) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *SuperExpression) VisitChildrenWith(Visitor) {}

func (n *ThisExpression) VisitChildrenWith(Visitor) {}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	if n.Tag != nil {
		n.Tag.VisitWith(v)
	}
	n.Expressions.VisitWith(v)
}

func (n *BooleanLiteral) VisitChildrenWith(Visitor) {}

func (n *NullLiteral) VisitChildrenWith(Visitor) {}

func (n *NumberLiteral) VisitChildrenWith(Visitor) {}

func (n *RegExpLiteral) VisitChildrenWith(Visitor) {}

func (n *StringLiteral) VisitChildrenWith(Visitor) {}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ConciseBody) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Decorators {
		n.Decorators[i].VisitWith(v)
	}
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *Decorator) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ClassElement) VisitChildrenWith(v Visitor) {
	if n.Element != nil {
		n.Element.VisitWith(v)
	}
}

func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	if n.Computed {
		n.Key.VisitWith(v)
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	if n.Computed {
		n.Key.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	if n.Computed {
		n.Key.VisitWith(v)
	}
	n.Value.VisitWith(v)
}
