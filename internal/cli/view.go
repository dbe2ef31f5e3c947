package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborlab/morpho/pkg/errors"
	"github.com/arborlab/morpho/pkg/render"
)

// viewCommand creates the view command for exporting section topology.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		load     loadOpts
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "view <file.swc>",
		Short: "Export a morphology's section topology as DOT or SVG",
		Long: `View reconstructs a morphology and exports its section tree: the soma as
root, sections as nodes colored by neurite type, ownership as edges.

The output format follows the file extension: ".svg" renders through
Graphviz, anything else (or stdout) gets DOT text.

Examples:
  morpho view neuron.swc                  # DOT on stdout
  morpho view neuron.swc -o topology.svg  # rendered SVG
  morpho view neuron.swc -o topology.dot  # DOT to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loadMorphology(args[0], load)
			if err != nil {
				return err
			}

			dot := render.ToDOT(m, render.Options{Detailed: detailed})
			if output == "" {
				fmt.Fprint(c.Stdout, dot)
				return nil
			}

			data := []byte(dot)
			if strings.HasSuffix(output, ".svg") {
				if data, err = render.RenderSVG(dot); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "rendering %s", output)
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidOutput, err, "writing %s", output)
			}
			c.Logger.Infof("Wrote %s", output)
			return nil
		},
	}

	c.addLoadFlags(cmd, &load)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include point counts and lengths in node labels")

	return cmd
}
