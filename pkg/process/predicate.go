package process

import "fmt"

// P is a named comparison predicate with one or two operands.
// Other is nil for single-operand predicates.
type P struct {
	Operator string
	Value    any
	Other    any
}

// NewP returns a predicate with the given operator.
func NewP(operator string, value any, other ...any) P {
	p := P{Operator: operator, Value: value}
	if len(other) > 0 {
		p.Other = other[0]
	}
	return p
}

func Eq(v any) P          { return NewP("eq", v) }
func Neq(v any) P         { return NewP("neq", v) }
func Lt(v any) P          { return NewP("lt", v) }
func Lte(v any) P         { return NewP("lte", v) }
func Gt(v any) P          { return NewP("gt", v) }
func Gte(v any) P         { return NewP("gte", v) }
func Inside(a, b any) P   { return NewP("inside", a, b) }
func Outside(a, b any) P  { return NewP("outside", a, b) }
func Between(a, b any) P  { return NewP("between", a, b) }
func Within(vs ...any) P  { return NewP("within", vs) }
func Without(vs ...any) P { return NewP("without", vs) }
func NotP(p P) P          { return NewP("not", p) }

// And composes p with other. Both operands are encoded as nested predicates.
func (p P) And(other P) P { return NewP("and", p, other) }

// Or composes p with other.
func (p P) Or(other P) P { return NewP("or", p, other) }

func (p P) String() string {
	if p.Other == nil {
		return fmt.Sprintf("%s(%v)", p.Operator, p.Value)
	}
	return fmt.Sprintf("%s(%v, %v)", p.Operator, p.Value, p.Other)
}

// Binding names a value so the server can cache the traversal and rebind it.
type Binding struct {
	Key   string
	Value any
}

// Bind returns a binding of key to value.
func Bind(key string, value any) Binding {
	return Binding{Key: key, Value: value}
}

func (b Binding) String() string {
	return fmt.Sprintf("binding[%s=%v]", b.Key, b.Value)
}
