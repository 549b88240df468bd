package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) tagsCommand() *cobra.Command {
	var showTypes bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List registered wire tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := c.newCodec()
			if err != nil {
				return err
			}
			reg := r.Registry()

			printTitle(c.stdout, "Wire tags")
			for _, tag := range reg.Tags() {
				printItem(c.stdout, tag)
			}
			if showTypes {
				printTitle(c.stdout, "Serializable types")
				for _, t := range reg.Types() {
					printItem(c.stdout, t)
				}
			}
			printKeyValue(c.stdout, "total", strconv.Itoa(len(reg.Tags())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTypes, "types", false, "also list the Go types with a serializer")
	return cmd
}
