package ast

// Visitor has one method per node kind. Embed NoopVisitor to get the
// default behavior, which visits children, and override the rest.
type Visitor interface {
	VisitProgram(n *Program)
	VisitStatements(n *Statements)
	VisitStatement(n *Statement)
	VisitExpressions(n *Expressions)
	VisitExpression(n *Expression)
	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitCaseStatement(n *CaseStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitDebuggerStatement(n *DebuggerStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitLabelledStatement(n *LabelledStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitForStatement(n *ForStatement)
	VisitForLoopInitializer(n *ForLoopInitializer)
	VisitForInStatement(n *ForInStatement)
	VisitForOfStatement(n *ForOfStatement)
	VisitForInto(n *ForInto)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitBindingTarget(n *BindingTarget)
	VisitArrayPattern(n *ArrayPattern)
	VisitObjectPattern(n *ObjectPattern)
	VisitPatternProperty(n *PatternProperty)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitImportSpecifier(n *ImportSpecifier)
	VisitExportDeclaration(n *ExportDeclaration)
	VisitExportSpecifier(n *ExportSpecifier)
	VisitExportDefaultDeclaration(n *ExportDefaultDeclaration)
	VisitIdentifier(n *Identifier)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitAwaitExpression(n *AwaitExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitMemberProperty(n *MemberProperty)
	VisitComputedProperty(n *ComputedProperty)
	VisitNewExpression(n *NewExpression)
	VisitSequenceExpression(n *SequenceExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitSuperExpression(n *SuperExpression)
	VisitThisExpression(n *ThisExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitYieldExpression(n *YieldExpression)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitRegExpLiteral(n *RegExpLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitConciseBody(n *ConciseBody)
	VisitParameterList(n *ParameterList)
	VisitClassLiteral(n *ClassLiteral)
	VisitDecorator(n *Decorator)
	VisitClassElement(n *ClassElement)
	VisitFieldDefinition(n *FieldDefinition)
	VisitMethodDefinition(n *MethodDefinition)
	VisitClassStaticBlock(n *ClassStaticBlock)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitProperty(n *Property)
	VisitPropertyShort(n *PropertyShort)
	VisitPropertyKeyed(n *PropertyKeyed)
}

// NoopVisitor visits every child through V. Embedding visitors must set V
// to themselves so that overridden methods are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatements(n *Statements) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatement(n *Statement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressions(n *Expressions) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpression(n *Expression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTryStatement(n *TryStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForStatement(n *ForStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForLoopInitializer(n *ForLoopInitializer) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForOfStatement(n *ForOfStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForInto(n *ForInto) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBindingTarget(n *BindingTarget) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayPattern(n *ArrayPattern) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitObjectPattern(n *ObjectPattern) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitPatternProperty(n *PatternProperty) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitImportDeclaration(n *ImportDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitImportSpecifier(n *ImportSpecifier) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExportDeclaration(n *ExportDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExportSpecifier(n *ExportSpecifier) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExportDefaultDeclaration(n *ExportDefaultDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIdentifier(n *Identifier) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitMemberProperty(n *MemberProperty) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitComputedProperty(n *ComputedProperty) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitYieldExpression(n *YieldExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTemplateLiteral(n *TemplateLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitConciseBody(n *ConciseBody) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitParameterList(n *ParameterList) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDecorator(n *Decorator) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitClassElement(n *ClassElement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitProperty(n *Property) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed) {
	n.VisitChildrenWith(nv.V)
}

func (n *Program) VisitWith(v Visitor)                  { v.VisitProgram(n) }
func (n *Statements) VisitWith(v Visitor)               { v.VisitStatements(n) }
func (n *Statement) VisitWith(v Visitor)                { v.VisitStatement(n) }
func (n *Expressions) VisitWith(v Visitor)              { v.VisitExpressions(n) }
func (n *Expression) VisitWith(v Visitor)               { v.VisitExpression(n) }
func (n *BlockStatement) VisitWith(v Visitor)           { v.VisitBlockStatement(n) }
func (n *BreakStatement) VisitWith(v Visitor)           { v.VisitBreakStatement(n) }
func (n *ContinueStatement) VisitWith(v Visitor)        { v.VisitContinueStatement(n) }
func (n *CaseStatement) VisitWith(v Visitor)            { v.VisitCaseStatement(n) }
func (n *CatchStatement) VisitWith(v Visitor)           { v.VisitCatchStatement(n) }
func (n *DebuggerStatement) VisitWith(v Visitor)        { v.VisitDebuggerStatement(n) }
func (n *DoWhileStatement) VisitWith(v Visitor)         { v.VisitDoWhileStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor)           { v.VisitEmptyStatement(n) }
func (n *ExpressionStatement) VisitWith(v Visitor)      { v.VisitExpressionStatement(n) }
func (n *IfStatement) VisitWith(v Visitor)              { v.VisitIfStatement(n) }
func (n *LabelledStatement) VisitWith(v Visitor)        { v.VisitLabelledStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor)          { v.VisitReturnStatement(n) }
func (n *SwitchStatement) VisitWith(v Visitor)          { v.VisitSwitchStatement(n) }
func (n *ThrowStatement) VisitWith(v Visitor)           { v.VisitThrowStatement(n) }
func (n *TryStatement) VisitWith(v Visitor)             { v.VisitTryStatement(n) }
func (n *WhileStatement) VisitWith(v Visitor)           { v.VisitWhileStatement(n) }
func (n *ForStatement) VisitWith(v Visitor)             { v.VisitForStatement(n) }
func (n *ForLoopInitializer) VisitWith(v Visitor)       { v.VisitForLoopInitializer(n) }
func (n *ForInStatement) VisitWith(v Visitor)           { v.VisitForInStatement(n) }
func (n *ForOfStatement) VisitWith(v Visitor)           { v.VisitForOfStatement(n) }
func (n *ForInto) VisitWith(v Visitor)                  { v.VisitForInto(n) }
func (n *VariableDeclaration) VisitWith(v Visitor)      { v.VisitVariableDeclaration(n) }
func (n *VariableDeclarator) VisitWith(v Visitor)       { v.VisitVariableDeclarator(n) }
func (n *BindingTarget) VisitWith(v Visitor)            { v.VisitBindingTarget(n) }
func (n *ArrayPattern) VisitWith(v Visitor)             { v.VisitArrayPattern(n) }
func (n *ObjectPattern) VisitWith(v Visitor)            { v.VisitObjectPattern(n) }
func (n *PatternProperty) VisitWith(v Visitor)          { v.VisitPatternProperty(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor)      { v.VisitFunctionDeclaration(n) }
func (n *ClassDeclaration) VisitWith(v Visitor)         { v.VisitClassDeclaration(n) }
func (n *ImportDeclaration) VisitWith(v Visitor)        { v.VisitImportDeclaration(n) }
func (n *ImportSpecifier) VisitWith(v Visitor)          { v.VisitImportSpecifier(n) }
func (n *ExportDeclaration) VisitWith(v Visitor)        { v.VisitExportDeclaration(n) }
func (n *ExportSpecifier) VisitWith(v Visitor)          { v.VisitExportSpecifier(n) }
func (n *ExportDefaultDeclaration) VisitWith(v Visitor) { v.VisitExportDefaultDeclaration(n) }
func (n *Identifier) VisitWith(v Visitor)               { v.VisitIdentifier(n) }
func (n *ArrayLiteral) VisitWith(v Visitor)             { v.VisitArrayLiteral(n) }
func (n *AssignExpression) VisitWith(v Visitor)         { v.VisitAssignExpression(n) }
func (n *AwaitExpression) VisitWith(v Visitor)          { v.VisitAwaitExpression(n) }
func (n *BinaryExpression) VisitWith(v Visitor)         { v.VisitBinaryExpression(n) }
func (n *CallExpression) VisitWith(v Visitor)           { v.VisitCallExpression(n) }
func (n *ConditionalExpression) VisitWith(v Visitor)    { v.VisitConditionalExpression(n) }
func (n *MemberExpression) VisitWith(v Visitor)         { v.VisitMemberExpression(n) }
func (n *MemberProperty) VisitWith(v Visitor)           { v.VisitMemberProperty(n) }
func (n *ComputedProperty) VisitWith(v Visitor)         { v.VisitComputedProperty(n) }
func (n *NewExpression) VisitWith(v Visitor)            { v.VisitNewExpression(n) }
func (n *SequenceExpression) VisitWith(v Visitor)       { v.VisitSequenceExpression(n) }
func (n *SpreadElement) VisitWith(v Visitor)            { v.VisitSpreadElement(n) }
func (n *SuperExpression) VisitWith(v Visitor)          { v.VisitSuperExpression(n) }
func (n *ThisExpression) VisitWith(v Visitor)           { v.VisitThisExpression(n) }
func (n *UnaryExpression) VisitWith(v Visitor)          { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor)         { v.VisitUpdateExpression(n) }
func (n *YieldExpression) VisitWith(v Visitor)          { v.VisitYieldExpression(n) }
func (n *TemplateLiteral) VisitWith(v Visitor)          { v.VisitTemplateLiteral(n) }
func (n *BooleanLiteral) VisitWith(v Visitor)           { v.VisitBooleanLiteral(n) }
func (n *NullLiteral) VisitWith(v Visitor)              { v.VisitNullLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor)            { v.VisitNumberLiteral(n) }
func (n *RegExpLiteral) VisitWith(v Visitor)            { v.VisitRegExpLiteral(n) }
func (n *StringLiteral) VisitWith(v Visitor)            { v.VisitStringLiteral(n) }
func (n *FunctionLiteral) VisitWith(v Visitor)          { v.VisitFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitWith(v Visitor)     { v.VisitArrowFunctionLiteral(n) }
func (n *ConciseBody) VisitWith(v Visitor)              { v.VisitConciseBody(n) }
func (n *ParameterList) VisitWith(v Visitor)            { v.VisitParameterList(n) }
func (n *ClassLiteral) VisitWith(v Visitor)             { v.VisitClassLiteral(n) }
func (n *Decorator) VisitWith(v Visitor)                { v.VisitDecorator(n) }
func (n *ClassElement) VisitWith(v Visitor)             { v.VisitClassElement(n) }
func (n *FieldDefinition) VisitWith(v Visitor)          { v.VisitFieldDefinition(n) }
func (n *MethodDefinition) VisitWith(v Visitor)         { v.VisitMethodDefinition(n) }
func (n *ClassStaticBlock) VisitWith(v Visitor)         { v.VisitClassStaticBlock(n) }
func (n *ObjectLiteral) VisitWith(v Visitor)            { v.VisitObjectLiteral(n) }
func (n *Property) VisitWith(v Visitor)                 { v.VisitProperty(n) }
func (n *PropertyShort) VisitWith(v Visitor)            { v.VisitPropertyShort(n) }
func (n *PropertyKeyed) VisitWith(v Visitor)            { v.VisitPropertyKeyed(n) }
