// Package process defines the traversal-side values a client sends to a
// traversal server: bytecode programs, predicates, bindings, strategies,
// lambdas, enum tokens, and the traversers that come back.
//
// # Bytecode
//
// A traversal is transmitted as [Bytecode]: two ordered lists of
// instructions, one for the traversal source (configuration such as
// withStrategies) and one for the steps. [GraphTraversal] is a small fluent
// builder that appends step instructions:
//
//	t := process.NewGraphTraversal().V(int64(1)).Out("knows").Values("name")
//	t.Bytecode().StepInstructions
//	// [V 1] [out knows] [values name]
//
// Anything implementing [Traversal] can be encoded, so custom DSL builders
// only need to expose their bytecode.
//
// # Enums
//
// Enum tokens ([T], [Direction], [Scope], ...) are string types whose value is
// the token name as spelled in the traversal DSL. Tokens that collide with
// reserved words carry a trailing underscore ("global_", "in_"); the codec
// maps those to their wire names through an explicit alias table.
//
// # Lambdas
//
// A [Lambda] is an explicit record of script text, script language, and
// declared arity. The codec never evaluates script text.
package process
