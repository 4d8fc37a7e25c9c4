package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/db"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	"github.com/izeinnn/university-management-system/internal/pkg/dberrors"
	"github.com/izeinnn/university-management-system/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var enrollmentColumns = []string{"e.id", "e.student_id", "e.course_id", "e.enrollment_date", "e.status", "e.grade"}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrollmentDate, &enrollment.Status, &enrollment.Grade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment row: %w", err)
	}
	return &enrollment, nil
}

// Create enrolls a student in a course. The course row is locked for the
// duration of the transaction so the capacity check and the insert observe
// the same active enrollment count even under concurrent requests.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var maxStudents int
		err := tx.QueryRow(ctx, `
			SELECT max_students FROM courses WHERE id = $1 FOR UPDATE`,
			enrollment.CourseID).Scan(&maxStudents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course row: %w", err)
		}

		var activeCount int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = 'enrolled'`,
			enrollment.CourseID).Scan(&activeCount)
		if err != nil {
			return fmt.Errorf("error counting active enrollments: %w", err)
		}
		if activeCount >= maxStudents {
			return apperrors.ErrCourseFull
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO enrollments (student_id, course_id, status, grade)
			VALUES ($1, $2, $3, $4)
			RETURNING id, enrollment_date`,
			enrollment.StudentID, enrollment.CourseID, enrollment.Status, enrollment.Grade).
			Scan(&enrollment.ID, &enrollment.EnrollmentDate)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "uq_enrollments_active") {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		logger.Info().
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Enrollment created")
		return nil
	})
}

// GetByID retrieves an enrollment by ID with its course ownership context.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT e.id, e.student_id, e.course_id, e.enrollment_date, e.status, e.grade,
		       c.instructor_id
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.id = $1`, id)

	var enrollment models.Enrollment
	var instructorID int64
	err := row.Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrollmentDate, &enrollment.Status, &enrollment.Grade,
		&instructorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment row: %w", err)
	}
	enrollment.Course = &models.Course{ID: enrollment.CourseID, InstructorID: instructorID}
	return &enrollment, nil
}

// List retrieves enrollments with optional student and course filters. Each
// row carries the owning course's instructor so callers can decide visibility
// without extra queries.
func (r *EnrollmentRepository) List(ctx context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, error) {
	builder := r.sb.Select(enrollmentColumns...).
		Column("c.instructor_id").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		OrderBy("e.id").
		Offset(uint64(skip)).
		Limit(uint64(limit))

	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"e.student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		builder = builder.Where(squirrel.Eq{"e.course_id": *filter.CourseID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var instructorID int64
		err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.EnrollmentDate, &enrollment.Status, &enrollment.Grade,
			&instructorID)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollment.Course = &models.Course{ID: enrollment.CourseID, InstructorID: instructorID}
		enrollments = append(enrollments, &enrollment)
	}
	return enrollments, rows.Err()
}

// ListByStudent retrieves all enrollments of a student.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.listWhere(ctx, squirrel.Eq{"e.student_id": studentID})
}

// ListByCourse retrieves all enrollments of a course.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.listWhere(ctx, squirrel.Eq{"e.course_id": courseID})
}

func (r *EnrollmentRepository) listWhere(ctx context.Context, cond squirrel.Eq) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments e").
		Where(cond).
		OrderBy("e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

// Update applies a partial update; only fields present in the request change.
func (r *EnrollmentRepository) Update(ctx context.Context, id int64, upd *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	builder := r.sb.Update("enrollments").Where(squirrel.Eq{"id": id})
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.Grade != nil {
		builder = builder.Set("grade", *upd.Grade)
	}

	sql, args, err := builder.
		Suffix("RETURNING " + joinColumns([]string{"id", "student_id", "course_id", "enrollment_date", "status", "grade"})).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	var enrollment models.Enrollment
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrollmentDate, &enrollment.Status, &enrollment.Grade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "uq_enrollments_active") {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}
	return &enrollment, nil
}

// Delete removes an enrollment by ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
