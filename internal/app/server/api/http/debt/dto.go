package debt

import "escuela/internal/domain/debt"

type listInput struct {
	StudentID string `path:"studentId" doc:"Student identifier in the billing system"`
}

type listOutput struct {
	Body []debt.Debt
}
