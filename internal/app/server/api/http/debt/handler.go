package debt

import (
	"context"

	"escuela/internal/domain/debt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	lookup     debt.Lookup
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(lookup debt.Lookup, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		lookup:     lookup,
		log:        log.With("component", "debt_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	debts, err := h.lookup.ForStudent(ctx, input.StudentID)
	if err != nil {
		h.log.Error("debt lookup failed", "student_id", input.StudentID, "error", err)
		return nil, huma.Error502BadGateway("billing service unavailable")
	}

	return &listOutput{Body: debts}, nil
}
