package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	service  *EnrollmentService
	students *fakeStudentStore
	courses  *fakeCourseStore
	store    *fakeEnrollmentStore
}

func newEnrollmentFixture() *enrollmentFixture {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	store := newFakeEnrollmentStore(courses)
	return &enrollmentFixture{
		service:  NewEnrollmentService(store, students, courses),
		students: students,
		courses:  courses,
		store:    store,
	}
}

func (f *enrollmentFixture) addStudent(userID int64) *models.Student {
	student := f.students.put(&models.Student{UserID: userID, StudentID: "S" + strconv.FormatInt(userID, 10)})
	return student
}

func (f *enrollmentFixture) addCourse(instructorID int64, maxStudents int) *models.Course {
	return f.courses.put(&models.Course{
		CourseCode:   "CS" + strconv.FormatInt(f.courses.nextID+1, 10),
		Title:        "Course",
		Credits:      3,
		InstructorID: instructorID,
		MaxStudents:  maxStudents,
		Status:       models.CourseActive,
	})
}

func adminPrincipal() *authz.Principal {
	return &authz.Principal{User: &models.User{ID: 1, Role: models.RoleAdmin}}
}

func studentPrincipal(student *models.Student) *authz.Principal {
	return &authz.Principal{
		User:    &models.User{ID: student.UserID, Role: models.RoleStudent},
		Student: student,
	}
}

func instructorPrincipal(instructorID int64) *authz.Principal {
	return &authz.Principal{
		User:       &models.User{ID: 100 + instructorID, Role: models.RoleInstructor},
		Instructor: &models.Instructor{ID: instructorID, UserID: 100 + instructorID},
	}
}

func statusPtr(s models.EnrollmentStatus) *models.EnrollmentStatus { return &s }

func TestEnrollmentSeatLifecycle(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	bob := f.addStudent(21)
	course := f.addCourse(3, 1)

	// Alice takes the only seat.
	first, err := f.service.Create(ctx, studentPrincipal(alice), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)

	// Bob is turned away while the course is full.
	_, err = f.service.Create(ctx, studentPrincipal(bob), &dto.CreateEnrollmentRequest{
		StudentID: bob.ID, CourseID: course.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)

	// Alice drops, freeing the seat.
	_, err = f.service.Update(ctx, studentPrincipal(alice), first.ID, &dto.UpdateEnrollmentRequest{
		Status: statusPtr(models.EnrollmentDropped),
	})
	require.NoError(t, err)

	// Now Bob can enroll.
	_, err = f.service.Create(ctx, studentPrincipal(bob), &dto.CreateEnrollmentRequest{
		StudentID: bob.ID, CourseID: course.ID,
	})
	assert.NoError(t, err)
}

func TestEnrollmentReenrollAfterDrop(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	course := f.addCourse(3, 10)

	first, err := f.service.Create(ctx, studentPrincipal(alice), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)

	// A second active enrollment in the same course is rejected.
	_, err = f.service.Create(ctx, studentPrincipal(alice), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	_, err = f.service.Update(ctx, studentPrincipal(alice), first.ID, &dto.UpdateEnrollmentRequest{
		Status: statusPtr(models.EnrollmentDropped),
	})
	require.NoError(t, err)

	// The dropped record stays; a fresh enrollment is allowed.
	second, err := f.service.Create(ctx, studentPrincipal(alice), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEnrollmentCreateNotFoundBeforeForbidden(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	course := f.addCourse(3, 10)
	outsider := studentPrincipal(f.addStudent(21))

	// A missing target wins over the caller's lack of permission.
	_, err := f.service.Create(ctx, outsider, &dto.CreateEnrollmentRequest{
		StudentID: 999, CourseID: course.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.service.Create(ctx, outsider, &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: 999,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	// With both targets present the caller is rejected.
	_, err = f.service.Create(ctx, outsider, &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestEnrollmentCreateByInstructorAndAdmin(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	bob := f.addStudent(21)
	course := f.addCourse(3, 10)

	_, err := f.service.Create(ctx, instructorPrincipal(3), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	assert.NoError(t, err)

	_, err = f.service.Create(ctx, adminPrincipal(), &dto.CreateEnrollmentRequest{
		StudentID: bob.ID, CourseID: course.ID,
	})
	assert.NoError(t, err)

	// An instructor of a different course has no claim.
	charlie := f.addStudent(22)
	_, err = f.service.Create(ctx, instructorPrincipal(4), &dto.CreateEnrollmentRequest{
		StudentID: charlie.ID, CourseID: course.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestEnrollmentListVisibility(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	bob := f.addStudent(21)
	courseA := f.addCourse(3, 10)
	courseB := f.addCourse(4, 10)

	admin := adminPrincipal()
	for _, req := range []*dto.CreateEnrollmentRequest{
		{StudentID: alice.ID, CourseID: courseA.ID},
		{StudentID: alice.ID, CourseID: courseB.ID},
		{StudentID: bob.ID, CourseID: courseB.ID},
	} {
		_, err := f.service.Create(ctx, admin, req)
		require.NoError(t, err)
	}

	all, err := f.service.List(ctx, admin, dto.EnrollmentFilter{}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := f.service.List(ctx, studentPrincipal(alice), dto.EnrollmentFilter{}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, enrollment := range mine {
		assert.Equal(t, alice.ID, enrollment.StudentID)
	}

	taught, err := f.service.List(ctx, instructorPrincipal(4), dto.EnrollmentFilter{}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, taught, 2)
	for _, enrollment := range taught {
		assert.Equal(t, courseB.ID, enrollment.CourseID)
	}

	// Filters combine with visibility.
	filtered, err := f.service.List(ctx, studentPrincipal(alice), dto.EnrollmentFilter{CourseID: &courseB.ID}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestEnrollmentGradeOnlyUpdateKeepsStatus(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	course := f.addCourse(3, 10)

	created, err := f.service.Create(ctx, adminPrincipal(), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)

	grade := "A"
	updated, err := f.service.Update(ctx, instructorPrincipal(3), created.ID, &dto.UpdateEnrollmentRequest{
		Grade: &grade,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Grade)
	assert.Equal(t, "A", *updated.Grade)
	assert.Equal(t, models.EnrollmentEnrolled, updated.Status)
}

func TestEnrollmentUpdateStudentDropOnly(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	course := f.addCourse(3, 10)

	created, err := f.service.Create(ctx, studentPrincipal(alice), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)

	_, err = f.service.Update(ctx, studentPrincipal(alice), created.ID, &dto.UpdateEnrollmentRequest{
		Status: statusPtr(models.EnrollmentCompleted),
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentsDropOnly)

	// A missing enrollment is reported before the ownership check.
	_, err = f.service.Update(ctx, studentPrincipal(alice), 999, &dto.UpdateEnrollmentRequest{
		Status: statusPtr(models.EnrollmentDropped),
	})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestEnrollmentDeleteRequiresAdmin(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	alice := f.addStudent(20)
	course := f.addCourse(3, 10)

	created, err := f.service.Create(ctx, adminPrincipal(), &dto.CreateEnrollmentRequest{
		StudentID: alice.ID, CourseID: course.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.Delete(ctx, studentPrincipal(alice), created.ID), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, f.service.Delete(ctx, instructorPrincipal(3), created.ID), apperrors.ErrPermissionDenied)
	assert.NoError(t, f.service.Delete(ctx, adminPrincipal(), created.ID))
	assert.ErrorIs(t, f.service.Delete(ctx, adminPrincipal(), created.ID), apperrors.ErrEnrollmentNotFound)
}
