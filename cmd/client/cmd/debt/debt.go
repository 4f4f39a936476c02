package debt

import (
	"fmt"
	"strconv"
	"time"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"

	"github.com/spf13/cobra"
)

// DebtCmd groups the billing lookups.
var DebtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Look up student debts",
}

var ListCmd = &cobra.Command{
	Use:   "list <studentID>",
	Short: "List the outstanding debts of a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		debts, err := app.Debts().ForStudent(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("look up debts: %w", err)
		}

		rows := make([][]string, 0, len(debts))
		for _, d := range debts {
			rows = append(rows, []string{
				d.Reference,
				output.Truncate(d.Concept, 30),
				strconv.FormatFloat(d.Amount, 'f', 2, 64),
				d.DueDate.Local().Format(time.DateOnly),
				d.Status.String(),
			})
		}
		return output.FromContext(cmd.Context()).Table(debts, []string{"REFERENCIA", "CONCEPTO", "MONTO", "VENCE", "ESTADO"}, rows)
	},
}
