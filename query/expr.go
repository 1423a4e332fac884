package query

import "fmt"

// Expr is a node of a boolean query tree. Leaves are literal patterns;
// interior nodes combine position sets with set semantics (AND intersects,
// OR unites, NOT complements against the whole text).
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Pattern is a literal pattern leaf.
type Pattern struct {
	Lit string
}

// AndExpr intersects the positions of its operands.
type AndExpr struct {
	Left, Right Expr
}

// OrExpr unites the positions of its operands.
type OrExpr struct {
	Left, Right Expr
}

// NotExpr complements the positions of its operand.
type NotExpr struct {
	Expr Expr
}

func (Pattern) exprNode() {}
func (AndExpr) exprNode() {}
func (OrExpr) exprNode()  {}
func (NotExpr) exprNode() {}

func (p Pattern) String() string { return fmt.Sprintf("%q", p.Lit) }
func (e AndExpr) String() string { return fmt.Sprintf("(%s AND %s)", e.Left, e.Right) }
func (e OrExpr) String() string  { return fmt.Sprintf("(%s OR %s)", e.Left, e.Right) }
func (e NotExpr) String() string { return fmt.Sprintf("(NOT %s)", e.Expr) }
