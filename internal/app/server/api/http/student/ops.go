package student

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-list",
		Method:      http.MethodGet,
		Path:        "/api/students",
		Summary:     "List students",
		Description: "Students ordered by paternal last name, maternal last name and first name.",
		Tags:        []string{"students"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-find",
		Method:      http.MethodGet,
		Path:        "/api/students/{id}",
		Summary:     "Get a student",
		Tags:        []string{"students"},
		Errors:      []int{http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "students-create",
		Method:        http.MethodPost,
		Path:          "/api/students",
		Summary:       "Register a student",
		Tags:          []string{"students"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict, http.StatusUnprocessableEntity},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-update",
		Method:      http.MethodPut,
		Path:        "/api/students/{id}",
		Summary:     "Replace a student",
		Tags:        []string{"students"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
		},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "students-delete",
		Method:        http.MethodDelete,
		Path:          "/api/students/{id}",
		Summary:       "Delete a student",
		Tags:          []string{"students"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
		Middlewares:   h.middleware,
	}
}
