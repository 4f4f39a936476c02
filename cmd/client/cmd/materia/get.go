package materia

import (
	"fmt"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, found, err := app.Materias().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}
		if !found {
			return fmt.Errorf("subject %s not found", args[0])
		}

		// the study plan does not fit a table row
		return output.FromContext(cmd.Context()).Value(m)
	},
}

var N8nCmd = &cobra.Command{
	Use:   "n8n <id>",
	Short: "Print a subject as an n8n item",
	Long:  `Prints {"json": {...}}, the item shape n8n workflows consume.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, found, err := app.Materias().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}
		if !found {
			return fmt.Errorf("subject %s not found", args[0])
		}

		return output.FromContext(cmd.Context()).Value(m.N8nPayload())
	},
}
