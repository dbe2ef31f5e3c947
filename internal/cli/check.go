package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborlab/morpho/pkg/errors"
	"github.com/arborlab/morpho/pkg/morph/check"
)

// checkCommand creates the check command for running topology validators.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		load       loadOpts
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "check <file.swc>",
		Short: "Run topology validators over a morphology",
		Long: `Check loads a morphology, reconstructs its section trees, and runs the
configured topology validators (monotonic radius, flatness, back-tracking,
duplicate points).

Validators are selected and tuned through a TOML config file:

  morpho check neuron.swc --config checks.toml

Without a config, monotonicity, back-tracking and exact duplicate detection
run with default tolerances. The command exits non-zero when any validator
flags an issue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := check.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = check.LoadConfig(configPath); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading %s", configPath)
				}
			}

			m, err := c.loadMorphology(args[0], load)
			if err != nil {
				return err
			}

			report, err := check.Run(m, cfg)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "running checks")
			}

			fmt.Fprint(c.Stdout, renderReport(report, m))
			if !report.Passed() {
				return errors.New(errors.ErrCodeTopology, "%s failed checks", m.Name())
			}
			return nil
		},
	}

	c.addLoadFlags(cmd, &load)
	cmd.Flags().StringVar(&configPath, "config", "", "TOML check configuration file")

	return cmd
}
