package debt

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "debts-by-student",
		Method:      http.MethodGet,
		Path:        "/api/debts/student/{studentId}",
		Summary:     "Outstanding debts of a student",
		Description: "Returns an empty list when the student owes nothing.",
		Tags:        []string{"debts"},
		Middlewares: h.middleware,
	}
}
