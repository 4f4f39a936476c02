package debt

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"escuela/internal/domain/debt"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_List(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	lookup := debt.NewMockService(debt.DefaultTable(), slog.Default()).WithClock(func() time.Time { return now })

	_, api := humatest.New(t)
	NewHandler(lookup, slog.Default(), nil).SetupRoutes(api)

	tests := []struct {
		name      string
		studentID string
		want      int
	}{
		{name: "student with debts", studentID: "1", want: 2},
		{name: "other seeded student", studentID: "10", want: 2},
		{name: "student without debts", studentID: "2", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get("/api/debts/student/" + tt.studentID)
			require.Equal(t, http.StatusOK, resp.Code)

			var got []debt.Debt
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}

	resp := api.Get("/api/debts/student/1")
	assert.Contains(t, resp.Body.String(), `"status":"OVERDUE"`)
	assert.Contains(t, resp.Body.String(), `"reference":"REF-FEB-24-001"`)
}
