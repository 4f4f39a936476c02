package materia

import (
	"context"
	"errors"

	"escuela/internal/domain/materia"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const notFoundMessage = "Materia no encontrada"

type Handler struct {
	service    materia.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service materia.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "materia_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.n8nOp(), h.n8n)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, h.fail("list", err)
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	m, found, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.fail("find", err)
	}
	if !found {
		return nil, huma.Error404NotFound(notFoundMessage)
	}

	return &findOutput{Body: m}, nil
}

func (h *Handler) n8n(ctx context.Context, input *findInput) (*n8nOutput, error) {
	m, found, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.fail("n8n", err)
	}
	if !found {
		return nil, huma.Error404NotFound(notFoundMessage)
	}

	return &n8nOutput{Body: m.N8nPayload()}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*findOutput, error) {
	m, err := h.service.Create(ctx, input.Body.toDomain())
	if err != nil {
		return nil, h.fail("create", err)
	}

	return &findOutput{Body: m}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*findOutput, error) {
	m, found, err := h.service.Update(ctx, input.ID, input.Body.toPatch())
	if err != nil {
		return nil, h.fail("update", err)
	}
	if !found {
		return nil, huma.Error404NotFound(notFoundMessage)
	}

	return &findOutput{Body: m}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	removed, err := h.service.Remove(ctx, input.ID)
	if err != nil {
		return nil, h.fail("delete", err)
	}
	if !removed {
		return nil, huma.Error404NotFound(notFoundMessage)
	}

	return &deleteOutput{}, nil
}

// fail turns a service error into an HTTP error. Validation problems are
// returned to the caller, anything else is logged and hidden.
func (h *Handler) fail(op string, err error) error {
	var verr *materia.ValidationError
	if errors.As(err, &verr) {
		return huma.Error422UnprocessableEntity(verr.Message, &huma.ErrorDetail{
			Message:  verr.Message,
			Location: "body." + verr.Field,
		})
	}

	h.log.Error("materia request failed", "op", op, "error", err)
	return huma.Error500InternalServerError("internal server error")
}
