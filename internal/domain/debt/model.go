package debt

import (
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusOverdue Status = "OVERDUE"
	StatusPaid    Status = "PAID"
)

func (Status) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(StatusPending),
			string(StatusOverdue),
			string(StatusPaid),
		},
		Description: "Estado del adeudo",
		Examples:    []any{StatusPending},
	}
}

// Validate rejects statuses outside the known set.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusOverdue, StatusPaid:
		return nil
	}
	return fmt.Errorf("estado de adeudo desconocido: %s", s)
}

func (s Status) String() string {
	return string(s)
}

// Debt is an outstanding charge reported by the billing system.
type Debt struct {
	Concept   string    `json:"concept"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"dueDate"`
	Status    Status    `json:"status"`
	Reference string    `json:"reference"`
}
