// Package pkg provides the libraries behind graphson, a GraphSON 2.0 codec
// for graph traversal clients.
//
// # Overview
//
// GraphSON is the typed JSON exchanged between traversal clients and
// servers. Values that plain JSON cannot describe travel inside envelopes:
//
//	{"@type": "g:Int32", "@value": 30}
//
// The pkg directory is organized into four areas:
//
//  1. [graphson] - The codec: registry, Writer, Reader, and built-in types
//  2. [structure] and [process] - The object model the codec encodes
//  3. [render/nodelink] - Graphviz diagrams of decoded vertices and edges
//  4. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	domain value
//	     ↓
//	[graphson] Writer (registry lookup → Node tree)
//	     ↓
//	JSON text ⇄ transport
//	     ↓
//	[graphson] Reader (tag lookup → domain value)
//
// # Quick Start
//
// Encode a traversal and decode a response:
//
//	g := process.NewGraphTraversalSource()
//	data, _ := graphson.Marshal(g.V().Has("age", process.Gt(int32(30))))
//
//	v, _ := graphson.Unmarshal(response)
//	for _, item := range v.([]any) {
//	    fmt.Println(item.(structure.Vertex).Label)
//	}
//
// Extend the codec without touching the global registry:
//
//	w, _ := graphson.NewWriter(graphson.WithSerializer(graphson.TypeOf[Money](), moneySerializer))
//	text, _ := w.WriteObject(Money{Cents: 995})
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/graphson/...   # Codec only
//	go test -run Example ./pkg/graphson
//
// [graphson]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/graphson
// [structure]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/structure
// [process]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/process
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphson/pkg/buildinfo
package pkg
