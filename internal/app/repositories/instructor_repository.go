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

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var instructorColumns = []string{"id", "user_id", "employee_id", "department", "hire_date", "salary", "office_location"}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	err := row.Scan(
		&instructor.ID, &instructor.UserID, &instructor.EmployeeID, &instructor.Department,
		&instructor.HireDate, &instructor.Salary, &instructor.OfficeLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error scanning instructor row: %w", err)
	}
	return &instructor, nil
}

// Create inserts a new instructor profile and fills in the assigned id.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Insert("instructors").
		Columns("user_id", "employee_id", "department", "salary", "office_location").
		Values(instructor.UserID, instructor.EmployeeID, instructor.Department, instructor.Salary, instructor.OfficeLocation).
		Suffix("RETURNING id, hire_date").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create instructor query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&instructor.ID, &instructor.HireDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_employee_id_key") {
			logger.Warn().Str("employeeID", instructor.EmployeeID).Msg("Attempted to create instructor with duplicate employee ID")
			return apperrors.ErrEmployeeIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "instructors_user_id_key") {
			return apperrors.ErrInstructorProfileExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}

	logger.Info().Int64("userID", instructor.UserID).Str("employeeID", instructor.EmployeeID).Msg("Instructor created")
	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}
	return scanInstructor(r.db.QueryRow(ctx, sql, args...))
}

// GetByUserID retrieves an instructor profile by the owning user's ID
func (r *InstructorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}
	return scanInstructor(r.db.QueryRow(ctx, sql, args...))
}

// EmployeeIDExists checks if an employee number is already taken.
func (r *InstructorRepository) EmployeeIDExists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM instructors WHERE employee_id = $1)`,
		employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking employee ID existence: %w", err)
	}
	return exists, nil
}

// List retrieves instructors with offset pagination.
func (r *InstructorRepository) List(ctx context.Context, skip, limit int) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		OrderBy("id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}
	return instructors, rows.Err()
}

// Update applies a partial update; only fields present in the request change.
func (r *InstructorRepository) Update(ctx context.Context, id int64, upd *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	builder := r.sb.Update("instructors").Where(squirrel.Eq{"id": id})
	if upd.Department != nil {
		builder = builder.Set("department", *upd.Department)
	}
	if upd.Salary != nil {
		builder = builder.Set("salary", *upd.Salary)
	}
	if upd.OfficeLocation != nil {
		builder = builder.Set("office_location", *upd.OfficeLocation)
	}

	sql, args, err := builder.Suffix("RETURNING " + joinColumns(instructorColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update instructor query: %w", err)
	}

	return scanInstructor(r.db.QueryRow(ctx, sql, args...))
}

// Delete removes an instructor by ID. Instructors still owning courses are
// protected by the store's RESTRICT rule.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting instructor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}
	return nil
}
