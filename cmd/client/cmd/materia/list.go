package materia

import (
	"fmt"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every subject",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items, err := app.Materias().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}

		rows := make([][]string, 0, len(items))
		for _, m := range items {
			rows = append(rows, row(m))
		}
		return output.FromContext(cmd.Context()).Table(items, header, rows)
	},
}
