// Package structure defines the graph elements exchanged with a remote
// traversal server: vertices, edges, properties, and paths.
//
// # Overview
//
// The types here are plain values. An [Edge] embeds its endpoints as [Vertex]
// values and a [VertexProperty] points at its owning vertex by value; no
// element is a shared mutable node of a larger graph. This mirrors what a
// server actually sends back: "detached" elements carrying identity and
// label, not adjacency.
//
// # Identity
//
// Elements are compared by identifier, the way a traversal server compares
// them. [Equal] implements this observational equality for arbitrary values
// (elements, paths, numbers, slices, maps) and is what round-trip tests use:
// an int32 id 1 and an int64 id 1 identify the same vertex.
//
//	a := structure.Vertex{ID: int32(1), Label: "person"}
//	b := structure.Vertex{ID: int64(1)}
//	structure.Equal(a, b) // true
//
// # Paths
//
// A [Path] pairs each traversed object with the set of step labels that
// were active when it was visited. Label sets are [LabelSet] values and
// expose their members in sorted order through [LabelSet.Items].
package structure
