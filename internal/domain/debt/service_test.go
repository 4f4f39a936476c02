package debt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestMockService_ForStudent(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	svc := NewMockService(DefaultTable(), slog.Default()).WithClock(func() time.Time { return now })

	tests := []struct {
		name      string
		studentID string
		wantCount int
	}{
		{name: "student 1 has debts", studentID: "1", wantCount: 2},
		{name: "student 10 has debts", studentID: "10", wantCount: 2},
		{name: "unknown student", studentID: "2", wantCount: 0},
		{name: "empty id", studentID: "", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debts, err := svc.ForStudent(context.Background(), tt.studentID)
			require.NoError(t, err)
			assert.NotNil(t, debts)
			assert.Len(t, debts, tt.wantCount)
		})
	}

	t.Run("due dates are relative to now", func(t *testing.T) {
		debts, err := svc.ForStudent(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, debts, 2)

		assert.Equal(t, StatusPending, debts[0].Status)
		assert.Equal(t, 4500.00, debts[0].Amount)
		assert.Equal(t, now.AddDate(0, 0, 5), debts[0].DueDate)
		assert.Equal(t, "REF-FEB-24-001", debts[0].Reference)

		assert.Equal(t, StatusOverdue, debts[1].Status)
		assert.True(t, debts[1].DueDate.Before(now))
	})
}

func TestMockService_ReplaceableTable(t *testing.T) {
	table := Table{
		"A-7": {{Concept: "Inscripción", Amount: 800, Status: StatusPaid, Reference: "REF-INS-A7"}},
	}
	svc := NewMockService(table, slog.Default())

	debts, err := svc.ForStudent(context.Background(), "A-7")
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, StatusPaid, debts[0].Status)

	debts, err = svc.ForStudent(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, StatusPending.Validate())
	assert.NoError(t, StatusOverdue.Validate())
	assert.NoError(t, StatusPaid.Validate())
	assert.Error(t, Status("CANCELLED").Validate())
}
