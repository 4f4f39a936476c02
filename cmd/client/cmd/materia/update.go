package materia

import (
	"errors"
	"fmt"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"
	"escuela/internal/domain/materia"

	"github.com/spf13/cobra"
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change some fields of a subject",
	Long:  `Only the flags given on the command line are changed; the rest of the subject is kept.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			return errors.New("nothing to update: pass at least one of --nombre, --descripcion, --plan, --puntos")
		}

		m, found, err := app.Materias().Update(cmd.Context(), args[0], patch)
		if err != nil {
			return fmt.Errorf("update subject: %w", err)
		}
		if !found {
			return fmt.Errorf("subject %s not found", args[0])
		}

		p := output.FromContext(cmd.Context())
		p.Message("Subject updated: %s", m.ID)
		return printOne(p, m)
	},
}

func patchFromFlags(cmd *cobra.Command) (materia.Patch, error) {
	var (
		p   materia.Patch
		err error
	)
	flags := cmd.Flags()
	if flags.Changed("nombre") {
		v := updateNombre
		p.Nombre = &v
	}
	if flags.Changed("descripcion") {
		v := updateDescripcion
		p.Descripcion = &v
	}
	if flags.Changed("plan") {
		if p.PlanEstudio, err = parseObject(updatePlan); err != nil {
			return materia.Patch{}, err
		}
	}
	if flags.Changed("puntos") {
		if p.PuntosEvaluacion, err = parseArray(updatePuntos); err != nil {
			return materia.Patch{}, err
		}
	}
	return p, nil
}

var (
	updateNombre      string
	updateDescripcion string
	updatePlan        string
	updatePuntos      string
)

func init() {
	UpdateCmd.Flags().StringVarP(&updateNombre, "nombre", "n", "", "subject name")
	UpdateCmd.Flags().StringVarP(&updateDescripcion, "descripcion", "d", "", "description")
	UpdateCmd.Flags().StringVar(&updatePlan, "plan", "", "study plan as a JSON object")
	UpdateCmd.Flags().StringVar(&updatePuntos, "puntos", "", "evaluation criteria as a JSON array")
}
