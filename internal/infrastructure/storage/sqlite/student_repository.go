package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"escuela/internal/domain/student"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

const studentColumns = `id, first_name, last_name, paternal_last_name, maternal_last_name,
		       full_name, email, date_of_birth, created_at, updated_at`

type StudentRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewStudentRepository(db *sql.DB, log *slog.Logger) *StudentRepository {
	return &StudentRepository{
		db:  db,
		log: log.With("component", "student_repository", "driver", "sqlite3"),
	}
}

func (r *StudentRepository) List(ctx context.Context) ([]student.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY paternal_last_name, maternal_last_name, first_name`)
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
	row := r.db.QueryRowContext(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = ?`, id)

	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, student.ErrNotFound
		}
		r.log.Error("failed to get student", "student_id", id, "error", err)
		return nil, fmt.Errorf("get student: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO students (first_name, last_name, paternal_last_name, maternal_last_name,
		                      full_name, email, date_of_birth, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.FirstName, s.LastName, s.PaternalLastName, s.MaternalLastName,
		s.FullName, s.Email, nullTime(s), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, student.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create student: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create student: last insert id: %w", err)
	}
	return id, nil
}

func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE students
		SET first_name = ?, last_name = ?, paternal_last_name = ?, maternal_last_name = ?,
		    full_name = ?, email = ?, date_of_birth = ?, updated_at = ?
		WHERE id = ?`,
		s.FirstName, s.LastName, s.PaternalLastName, s.MaternalLastName,
		s.FullName, s.Email, nullTime(s), s.UpdatedAt, s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return student.ErrDuplicateEmail
		}
		return fmt.Errorf("update student: %w", err)
	}
	return expectOneRow(res)
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return expectOneRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (*student.Student, error) {
	var (
		s   student.Student
		dob sql.NullTime
	)
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.PaternalLastName, &s.MaternalLastName,
		&s.FullName, &s.Email, &dob, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		t := dob.Time.UTC()
		s.DateOfBirth = &t
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}

func nullTime(s *student.Student) sql.NullTime {
	if s.DateOfBirth == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: s.DateOfBirth.UTC(), Valid: true}
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return student.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
