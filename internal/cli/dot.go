package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphson/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type dotOpts struct {
	output   string
	format   string
	detailed bool
}

func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Draw the vertices and edges in a GraphSON document",
		Long: `Dot decodes a GraphSON document and collects every vertex and edge it
contains, including those inside paths and traversers, into a Graphviz
diagram. The output is DOT text or, with --format svg, a rendered SVG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(opts.format)
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want dot or svg)", opts.format)
			}

			data, err := c.readInput(args)
			if err != nil {
				return err
			}
			_, r, err := c.newCodec()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			v, err := r.ReadObject(string(data))
			if err != nil {
				return err
			}
			g := nodelink.Collect(v)
			if g.Len() == 0 {
				printWarning(c.stderr, "no vertices found")
			}

			out := []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed}))
			if format == formatSVG {
				if out, err = nodelink.RenderSVG(cmd.Context(), string(out)); err != nil {
					return err
				}
			}
			prog.done(fmt.Sprintf("Rendered %d vertices, %d edges", g.Len(), len(g.Links())))

			if opts.output == "" {
				_, err = c.stdout.Write(out)
				return err
			}
			if err := os.WriteFile(opts.output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printSuccess(c.stderr, "Wrote %s", strings.ToUpper(format))
			printFile(c.stderr, opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show vertex properties")
	return cmd
}
