package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the engine would run with, after applying
--config and --layout, as YAML. Redirect it to a file to start customising:

  snack config > ~/.snack/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List board layouts",
	Long:  `Shows the named layouts accepted by --layout.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runLayouts(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	layouts := config.Layouts()

	fmt.Fprintln(out, "Available layouts:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range layouts {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %-6s  %s\n", maxNameLen, "Name", "Board", "Tick", "Description")
	fmt.Fprintf(out, "  %-*s  %-5s  %-6s  %s\n", maxNameLen, "----", "-----", "----", "-----------")

	for _, l := range layouts {
		fmt.Fprintf(out, "  %-*s  %-5d  %-6s  %s\n", maxNameLen, l.Name, l.Size, l.Tick, l.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snack play --layout <name>' to use one.")
}
