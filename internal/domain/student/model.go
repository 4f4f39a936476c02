package student

import (
	"strings"
	"time"
)

type Student struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"firstName" validate:"required,max=100"`
	LastName         string     `json:"lastName" validate:"max=100"`
	PaternalLastName string     `json:"paternalLastName" validate:"max=100"`
	MaternalLastName string     `json:"maternalLastName" validate:"max=100"`
	FullName         string     `json:"fullName" validate:"max=300"`
	Email            string     `json:"email" validate:"required,email,max=200"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Normalize trims the names and derives LastName and FullName from their
// parts when they are blank.
func (s *Student) Normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.PaternalLastName = strings.TrimSpace(s.PaternalLastName)
	s.MaternalLastName = strings.TrimSpace(s.MaternalLastName)
	s.Email = strings.TrimSpace(s.Email)

	s.LastName = strings.TrimSpace(s.LastName)
	if s.LastName == "" {
		s.LastName = joinNonBlank(s.PaternalLastName, s.MaternalLastName)
	}

	s.FullName = strings.TrimSpace(s.FullName)
	if s.FullName == "" {
		s.FullName = joinNonBlank(s.FirstName, s.PaternalLastName, s.MaternalLastName)
	}
}

func joinNonBlank(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
