package postgres

import (
	"context"
	"errors"
	"fmt"

	"escuela/internal/domain/student"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"
)

const uniqueViolation = "23505"

const studentColumns = `id, first_name, last_name, paternal_last_name, maternal_last_name,
		       full_name, email, date_of_birth, created_at, updated_at`

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type StudentRepository struct {
	db  querier
	log *slog.Logger
}

func NewStudentRepository(storage *Storage, log *slog.Logger) *StudentRepository {
	return newStudentRepository(storage.Pool(), log)
}

func newStudentRepository(db querier, log *slog.Logger) *StudentRepository {
	return &StudentRepository{
		db:  db,
		log: log.With("component", "student_repository"),
	}
}

func (r *StudentRepository) List(ctx context.Context) ([]student.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY paternal_last_name, maternal_last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]student.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

func (r *StudentRepository) Get(ctx context.Context, id int64) (*student.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE id = $1`

	s, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, student.ErrNotFound
		}
		r.log.Error("failed to get student", "student_id", id, "error", err)
		return nil, fmt.Errorf("get student: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) (int64, error) {
	const query = `
		INSERT INTO students (first_name, last_name, paternal_last_name, maternal_last_name,
		                      full_name, email, date_of_birth, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		s.FirstName, s.LastName, s.PaternalLastName, s.MaternalLastName,
		s.FullName, s.Email, s.DateOfBirth, s.CreatedAt, s.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, student.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create student: %w", err)
	}

	return id, nil
}

func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	const query = `
		UPDATE students
		SET first_name = $2, last_name = $3, paternal_last_name = $4, maternal_last_name = $5,
		    full_name = $6, email = $7, date_of_birth = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.FirstName, s.LastName, s.PaternalLastName, s.MaternalLastName,
		s.FullName, s.Email, s.DateOfBirth, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return student.ErrDuplicateEmail
		}
		return fmt.Errorf("update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

func scanStudent(row pgx.Row) (*student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.PaternalLastName, &s.MaternalLastName,
		&s.FullName, &s.Email, &s.DateOfBirth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
