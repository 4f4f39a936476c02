package student

import (
	"time"

	"escuela/internal/domain/student"
)

const dateLayout = "2006-01-02"

type idParam struct {
	ID int64 `path:"id" minimum:"1" doc:"Student identifier"`
}

type findInput struct {
	idParam
}

type studentRequest struct {
	ID               int64  `json:"id,omitempty" doc:"Must match the route id on update"`
	FirstName        string `json:"firstName,omitempty" example:"Ana"`
	LastName         string `json:"lastName,omitempty" doc:"Derived from the paternal and maternal last names when empty"`
	PaternalLastName string `json:"paternalLastName,omitempty" example:"Pérez"`
	MaternalLastName string `json:"maternalLastName,omitempty" example:"López"`
	FullName         string `json:"fullName,omitempty" doc:"Derived from the name parts when empty"`
	Email            string `json:"email,omitempty" example:"ana@example.com"`
	DateOfBirth      string `json:"dateOfBirth,omitempty" format:"date" example:"2012-05-17"`
}

func (r studentRequest) toDomain() student.Student {
	st := student.Student{
		ID:               r.ID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PaternalLastName: r.PaternalLastName,
		MaternalLastName: r.MaternalLastName,
		FullName:         r.FullName,
		Email:            r.Email,
	}
	// the schema already checked the format
	if dob, err := time.Parse(dateLayout, r.DateOfBirth); err == nil {
		st.DateOfBirth = &dob
	}
	return st
}

type createInput struct {
	Body studentRequest
}

type updateInput struct {
	idParam
	Body studentRequest
}

type studentResponse struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	PaternalLastName string    `json:"paternalLastName"`
	MaternalLastName string    `json:"maternalLastName"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty" format:"date"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toResponse(st *student.Student) studentResponse {
	resp := studentResponse{
		ID:               st.ID,
		FirstName:        st.FirstName,
		LastName:         st.LastName,
		PaternalLastName: st.PaternalLastName,
		MaternalLastName: st.MaternalLastName,
		FullName:         st.FullName,
		Email:            st.Email,
		CreatedAt:        st.CreatedAt,
		UpdatedAt:        st.UpdatedAt,
	}
	if st.DateOfBirth != nil {
		dob := st.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

type listOutput struct {
	Body []studentResponse
}

type output struct {
	Body studentResponse
}

type deleteOutput struct{}
