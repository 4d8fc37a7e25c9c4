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
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	"github.com/izeinnn/university-management-system/internal/pkg/dberrors"
	"github.com/izeinnn/university-management-system/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// enrolledCountExpr is the read-time projection of active enrollments.
const enrolledCountExpr = `(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id AND e.status = 'enrolled')`

var courseColumns = []string{"c.id", "c.course_code", "c.title", "c.description", "c.credits", "c.instructor_id", "c.max_students", "c.status", "c.created_at"}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.CourseCode, &course.Title, &course.Description, &course.Credits,
		&course.InstructorID, &course.MaxStudents, &course.Status, &course.CreatedAt,
		&course.EnrolledCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course row: %w", err)
	}
	return &course, nil
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		Column(enrolledCountExpr + " AS enrolled_count").
		From("courses c")
}

// Create inserts a new course and fills in the assigned id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_code", "title", "description", "credits", "instructor_id", "max_students", "status").
		Values(course.CourseCode, course.Title, course.Description, course.Credits, course.InstructorID, course.MaxStudents, course.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			logger.Warn().Str("courseCode", course.CourseCode).Msg("Attempted to create course with duplicate code")
			return apperrors.ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInstructorNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	logger.Info().Str("courseCode", course.CourseCode).Int64("instructorID", course.InstructorID).Msg("Course created")
	return nil
}

// GetByID retrieves a course by ID with its active enrollment count.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}
	return scanCourse(r.db.QueryRow(ctx, sql, args...))
}

// CourseCodeExists checks if a course code is already taken.
func (r *CourseRepository) CourseCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
		code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}
	return exists, nil
}

// List retrieves courses with offset pagination and active enrollment counts.
func (r *CourseRepository) List(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	sql, args, err := r.selectCourses().
		OrderBy("c.id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}
	return r.queryCourses(ctx, sql, args)
}

// ListByInstructor retrieves all courses owned by an instructor.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.instructor_id": instructorID}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}
	return r.queryCourses(ctx, sql, args)
}

func (r *CourseRepository) queryCourses(ctx context.Context, sql string, args []interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// Update applies a partial update; only fields present in the request change.
func (r *CourseRepository) Update(ctx context.Context, id int64, upd *dto.UpdateCourseRequest) (*models.Course, error) {
	builder := r.sb.Update("courses").Where(squirrel.Eq{"id": id})
	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Credits != nil {
		builder = builder.Set("credits", *upd.Credits)
	}
	if upd.InstructorID != nil {
		builder = builder.Set("instructor_id", *upd.InstructorID)
	}
	if upd.MaxStudents != nil {
		builder = builder.Set("max_students", *upd.MaxStudents)
	}
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}

	sql, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	var updatedID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	// Re-read to pick up the derived enrolled_count.
	return r.GetByID(ctx, updatedID)
}

// Delete removes a course by ID. Courses with dependent enrollments are
// protected by the store's RESTRICT rule.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
