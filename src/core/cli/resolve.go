package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the effective node configuration",
		Long: `Resolve the effective node configuration from built-in defaults, an
optional node config file, GRID_NODE_* environment variables and CLI flags,
then normalize capabilities, drop the ones this machine cannot run, and
resolve the hub endpoint and the node's advertised address.`,
		RunE: runResolve,
	}
	addNodeFlags(cmd)
	cmd.Flags().Bool("json", false, "print the resolved configuration as JSON")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	cfg, err := loadNodeConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := finalizeNodeConfig(cfg, log); err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(cfg.ToMap(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize resolved configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
	return nil
}
