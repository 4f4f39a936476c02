package materia

import (
	"fmt"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a subject",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		removed, err := app.Materias().Remove(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete subject: %w", err)
		}
		if !removed {
			return fmt.Errorf("subject %s not found", args[0])
		}

		p := output.FromContext(cmd.Context())
		if p.JSON() {
			return p.Value(map[string]any{"id": args[0], "deleted": true})
		}
		p.Message("Subject deleted: %s", args[0])
		return nil
	},
}
