package materia

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "materias-list",
		Method:      http.MethodGet,
		Path:        "/materias",
		Summary:     "List subjects",
		Tags:        []string{"materias"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "materias-find",
		Method:      http.MethodGet,
		Path:        "/materias/{id}",
		Summary:     "Get a subject",
		Tags:        []string{"materias"},
		Errors:      []int{http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) n8nOp() huma.Operation {
	return huma.Operation{
		OperationID: "materias-n8n",
		Method:      http.MethodGet,
		Path:        "/materias/{id}/n8n",
		Summary:     "Get a subject as an n8n item",
		Description: "Wraps the subject in the {\"json\": ...} envelope n8n workflows consume.",
		Tags:        []string{"materias", "n8n"},
		Errors:      []int{http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "materias-create",
		Method:        http.MethodPost,
		Path:          "/materias",
		Summary:       "Create a subject",
		Tags:          []string{"materias"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "materias-update",
		Method:      http.MethodPut,
		Path:        "/materias/{id}",
		Summary:     "Update a subject",
		Description: "Only the fields present in the body are changed.",
		Tags:        []string{"materias"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "materias-delete",
		Method:        http.MethodDelete,
		Path:          "/materias/{id}",
		Summary:       "Delete a subject",
		Tags:          []string{"materias"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
		Middlewares:   h.middleware,
	}
}
