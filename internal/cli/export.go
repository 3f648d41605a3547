package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/daystack/pkg/models"
	"gopkg.in/yaml.v3"
)

// snapshot is the export document bundling all three records.
type snapshot struct {
	Active    []models.Task `json:"active" yaml:"active"`
	Completed []models.Task `json:"completed" yaml:"completed"`
	CanUndo   bool          `json:"canUndo" yaml:"can_undo"`
}

func newExportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of all tasks to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Store == nil {
				return fmt.Errorf("store not initialized")
			}

			snap := snapshot{
				Active:    allActive(),
				Completed: Store.CompletedSorted(),
				CanUndo:   Store.CanUndo(),
			}

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer func() { _ = enc.Close() }()
				if err := enc.Encode(snap); err != nil {
					return fmt.Errorf("exporting snapshot: encoding YAML: %w", err)
				}
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(snap); err != nil {
					return fmt.Errorf("exporting snapshot: encoding JSON: %w", err)
				}
			default:
				return fmt.Errorf("unsupported format %q, expected yaml or json", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")

	return cmd
}

func init() {
	rootCmd.AddCommand(newExportCommand())
}
