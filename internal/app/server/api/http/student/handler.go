package student

import (
	"context"
	"errors"

	"escuela/internal/domain/student"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    student.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service student.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "student_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	students, err := h.service.List(ctx)
	if err != nil {
		return nil, h.fail(err)
	}

	body := make([]studentResponse, 0, len(students))
	for i := range students {
		body = append(body, toResponse(&students[i]))
	}
	return &listOutput{Body: body}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	st, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.fail(err)
	}

	return &output{Body: toResponse(st)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	st, err := h.service.Create(ctx, input.Body.toDomain())
	if err != nil {
		return nil, h.fail(err)
	}

	return &output{Body: toResponse(st)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	st, err := h.service.Update(ctx, input.ID, input.Body.toDomain())
	if err != nil {
		return nil, h.fail(err)
	}

	return &output{Body: toResponse(st)}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.fail(err)
	}

	return &deleteOutput{}, nil
}

func (h *Handler) fail(err error) error {
	var derr *student.DomainError
	switch {
	case errors.Is(err, student.ErrNotFound):
		return huma.Error404NotFound("Student not found")
	case errors.Is(err, student.ErrIDMismatch):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, student.ErrDuplicateEmail):
		return huma.Error409Conflict("A student with this email already exists")
	case errors.As(err, &derr) && errors.Is(derr, student.ErrInvalidData):
		return huma.Error422UnprocessableEntity(derr.Message, &huma.ErrorDetail{
			Message:  derr.Message,
			Location: "body." + derr.Field,
		})
	}

	h.log.Error("student request failed", "error", err)
	return huma.Error500InternalServerError("internal server error")
}
