package debt

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

// Lookup returns the debts of a student. Unknown students have no debts.
type Lookup interface {
	ForStudent(ctx context.Context, studentID string) ([]Debt, error)
}

// Entry is a row of the mock table. Due dates are kept relative to the
// moment of the lookup.
type Entry struct {
	Concept   string
	Amount    float64
	DueIn     time.Duration
	Status    Status
	Reference string
}

// Table maps a student id to its canned debts.
type Table map[string][]Entry

// DefaultTable reproduces the fixtures the billing team shipped for testing:
// students 1 and 10 owe February tuition and the yearly insurance.
func DefaultTable() Table {
	entries := []Entry{
		{
			Concept:   "Colegiatura Febrero 2024",
			Amount:    4500.00,
			DueIn:     5 * 24 * time.Hour,
			Status:    StatusPending,
			Reference: "REF-FEB-24-001",
		},
		{
			Concept:   "Seguro Escolar Anual",
			Amount:    1200.00,
			DueIn:     -10 * 24 * time.Hour,
			Status:    StatusOverdue,
			Reference: "REF-INS-24-999",
		},
	}
	return Table{
		"1":  entries,
		"10": entries,
	}
}

// MockService answers from a static Table. It never fails.
type MockService struct {
	table Table
	now   func() time.Time
	log   *slog.Logger
}

func NewMockService(table Table, log *slog.Logger) *MockService {
	return &MockService{
		table: table,
		now:   time.Now,
		log:   log.With("component", "debt_mock_service"),
	}
}

// WithClock replaces time.Now as the reference for relative due dates.
func (s *MockService) WithClock(now func() time.Time) *MockService {
	s.now = now
	return s
}

func (s *MockService) ForStudent(_ context.Context, studentID string) ([]Debt, error) {
	entries := s.table[studentID]
	debts := make([]Debt, 0, len(entries))

	now := s.now().UTC()
	for _, e := range entries {
		debts = append(debts, Debt{
			Concept:   e.Concept,
			Amount:    e.Amount,
			DueDate:   now.Add(e.DueIn),
			Status:    e.Status,
			Reference: e.Reference,
		})
	}

	s.log.Debug("debt lookup", "student_id", studentID, "count", len(debts))
	return debts, nil
}
