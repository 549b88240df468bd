package process

// Traversal is anything that can be transmitted as a bytecode program.
type Traversal interface {
	Bytecode() *Bytecode
}

// GraphTraversalSource spawns traversals and carries source instructions
// such as strategies and bindings.
type GraphTraversalSource struct {
	bytecode *Bytecode
}

// NewGraphTraversalSource returns a source with no configuration.
func NewGraphTraversalSource() *GraphTraversalSource {
	return &GraphTraversalSource{bytecode: NewBytecode()}
}

// WithStrategies returns a new source that applies the given strategies.
func (g *GraphTraversalSource) WithStrategies(strategies ...Strategy) *GraphTraversalSource {
	args := make([]any, len(strategies))
	for i, s := range strategies {
		args[i] = s
	}
	return g.with("withStrategies", args...)
}

// WithoutStrategies returns a new source that removes the named strategies.
func (g *GraphTraversalSource) WithoutStrategies(names ...string) *GraphTraversalSource {
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	return g.with("withoutStrategies", args...)
}

// WithSideEffect returns a new source with a global side effect.
func (g *GraphTraversalSource) WithSideEffect(key string, value any) *GraphTraversalSource {
	return g.with("withSideEffect", key, value)
}

// WithSack returns a new source whose traversers start with the given sack value.
func (g *GraphTraversalSource) WithSack(initial any) *GraphTraversalSource {
	return g.with("withSack", initial)
}

func (g *GraphTraversalSource) with(op string, args ...any) *GraphTraversalSource {
	bc := g.bytecode.Clone()
	bc.AddSource(op, args...)
	return &GraphTraversalSource{bytecode: bc}
}

// Bytecode returns the source instructions.
func (g *GraphTraversalSource) Bytecode() *Bytecode { return g.bytecode }

// V starts a traversal over vertices.
func (g *GraphTraversalSource) V(ids ...any) *GraphTraversal {
	return g.spawn("V", ids...)
}

// E starts a traversal over edges.
func (g *GraphTraversalSource) E(ids ...any) *GraphTraversal {
	return g.spawn("E", ids...)
}

// AddV starts a traversal that adds a vertex.
func (g *GraphTraversalSource) AddV(label ...any) *GraphTraversal {
	return g.spawn("addV", label...)
}

// Inject starts a traversal over the given values.
func (g *GraphTraversalSource) Inject(values ...any) *GraphTraversal {
	return g.spawn("inject", values...)
}

func (g *GraphTraversalSource) spawn(op string, args ...any) *GraphTraversal {
	t := &GraphTraversal{bytecode: g.bytecode.Clone()}
	return t.Step(op, args...)
}

// GraphTraversal is a fluent builder of step instructions.
// Builders mutate in place, like the traversals of the reference DSL.
type GraphTraversal struct {
	bytecode *Bytecode
}

// NewGraphTraversal returns an empty traversal, suitable for anonymous
// child traversals passed as step arguments.
func NewGraphTraversal() *GraphTraversal {
	return &GraphTraversal{bytecode: NewBytecode()}
}

// Bytecode returns the program built so far.
func (t *GraphTraversal) Bytecode() *Bytecode { return t.bytecode }

// Step appends an arbitrary step instruction.
func (t *GraphTraversal) Step(op string, args ...any) *GraphTraversal {
	t.bytecode.AddStep(op, args...)
	return t
}

func (t *GraphTraversal) V(ids ...any) *GraphTraversal         { return t.Step("V", ids...) }
func (t *GraphTraversal) AddE(label ...any) *GraphTraversal    { return t.Step("addE", label...) }
func (t *GraphTraversal) AddV(label ...any) *GraphTraversal    { return t.Step("addV", label...) }
func (t *GraphTraversal) Out(labels ...any) *GraphTraversal    { return t.Step("out", labels...) }
func (t *GraphTraversal) In(labels ...any) *GraphTraversal     { return t.Step("in", labels...) }
func (t *GraphTraversal) Both(labels ...any) *GraphTraversal   { return t.Step("both", labels...) }
func (t *GraphTraversal) OutE(labels ...any) *GraphTraversal   { return t.Step("outE", labels...) }
func (t *GraphTraversal) InE(labels ...any) *GraphTraversal    { return t.Step("inE", labels...) }
func (t *GraphTraversal) OutV() *GraphTraversal                { return t.Step("outV") }
func (t *GraphTraversal) InV() *GraphTraversal                 { return t.Step("inV") }
func (t *GraphTraversal) Has(args ...any) *GraphTraversal      { return t.Step("has", args...) }
func (t *GraphTraversal) HasLabel(args ...any) *GraphTraversal { return t.Step("hasLabel", args...) }
func (t *GraphTraversal) Values(keys ...any) *GraphTraversal   { return t.Step("values", keys...) }
func (t *GraphTraversal) ValueMap(args ...any) *GraphTraversal { return t.Step("valueMap", args...) }
func (t *GraphTraversal) Property(args ...any) *GraphTraversal { return t.Step("property", args...) }
func (t *GraphTraversal) As(labels ...any) *GraphTraversal     { return t.Step("as", labels...) }
func (t *GraphTraversal) Select(args ...any) *GraphTraversal   { return t.Step("select", args...) }
func (t *GraphTraversal) Where(args ...any) *GraphTraversal    { return t.Step("where", args...) }
func (t *GraphTraversal) Is(arg any) *GraphTraversal           { return t.Step("is", arg) }
func (t *GraphTraversal) Not(child Traversal) *GraphTraversal  { return t.Step("not", child) }
func (t *GraphTraversal) Order(args ...any) *GraphTraversal    { return t.Step("order", args...) }
func (t *GraphTraversal) By(args ...any) *GraphTraversal       { return t.Step("by", args...) }
func (t *GraphTraversal) From(arg any) *GraphTraversal         { return t.Step("from", arg) }
func (t *GraphTraversal) To(arg any) *GraphTraversal           { return t.Step("to", arg) }
func (t *GraphTraversal) Limit(args ...any) *GraphTraversal    { return t.Step("limit", args...) }
func (t *GraphTraversal) Count(args ...any) *GraphTraversal    { return t.Step("count", args...) }
func (t *GraphTraversal) Fold() *GraphTraversal                { return t.Step("fold") }
func (t *GraphTraversal) Unfold() *GraphTraversal              { return t.Step("unfold") }
func (t *GraphTraversal) Path() *GraphTraversal                { return t.Step("path") }
func (t *GraphTraversal) Map(arg any) *GraphTraversal          { return t.Step("map", arg) }
func (t *GraphTraversal) Filter(arg any) *GraphTraversal       { return t.Step("filter", arg) }
func (t *GraphTraversal) Sack(args ...any) *GraphTraversal     { return t.Step("sack", args...) }
func (t *GraphTraversal) Group(args ...any) *GraphTraversal    { return t.Step("group", args...) }
