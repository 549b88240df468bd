// Package nodelink renders the graph elements found in decoded GraphSON as
// node-link diagrams.
//
// # Usage
//
// Collect vertices and edges from decoded values, convert them to DOT, then
// render to SVG:
//
//	g := nodelink.Collect(values...)
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Edges contribute both endpoints, so a result holding only edges still
// draws its vertices. Vertex properties attach to their owning vertex and
// are shown when Options.Detailed is set.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
