package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/graphson"
)

// readInput returns the contents of path, or of stdin when path is empty or "-".
func (c *CLI) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	return readFile(args[0], errors.ErrCodeInvalidInput)
}

// readFile reads path. A missing file is FILE_NOT_FOUND; other failures
// carry code.
func readFile(path string, code errors.Code) ([]byte, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(code, err, "read %s", path)
	}
	return data, nil
}

func (c *CLI) decodeCommand() *cobra.Command {
	var typed bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode GraphSON and print the resulting values",
		Long: `Decode reads a GraphSON document from a file or stdin and prints the
decoded values. Unknown type tags are kept as {"@type", "@value"} maps.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args)
			if err != nil {
				return err
			}
			w, r, err := c.newCodec()
			if err != nil {
				return err
			}
			v, err := r.ReadObject(string(data))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("decoded %T", v)
			if typed {
				out, err := w.WriteObject(v)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.stdout, out)
				return err
			}
			return printValue(c.stdout, v)
		},
	}

	cmd.Flags().BoolVar(&typed, "typed", false, "print the decoded values re-encoded as GraphSON")
	return cmd
}

func (c *CLI) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode plain JSON as typed GraphSON",
		Long: `Encode reads a plain JSON document, decodes it without type information,
and writes it back with type envelopes: integers become g:Int64, fractions
g:Double.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args)
			if err != nil {
				return err
			}
			w, r, err := c.newCodec()
			if err != nil {
				return err
			}
			out, err := normalize(w, r, data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, out)
			return err
		},
	}
}

// normalize decodes data and encodes the result again.
func normalize(w *graphson.Writer, r *graphson.Reader, data []byte) (string, error) {
	v, err := r.ReadObject(string(data))
	if err != nil {
		return "", err
	}
	return w.WriteObject(v)
}

// printValue prints a decoded value. Top-level lists print one item per line.
func printValue(out io.Writer, v any) error {
	items, ok := v.([]any)
	if !ok {
		_, err := fmt.Fprintf(out, "%v\n", v)
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(out, "%v\n", item); err != nil {
			return err
		}
	}
	return nil
}
