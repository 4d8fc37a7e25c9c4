package services

import (
	"context"
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// In-memory stores mirroring the repository semantics, including the
// uniqueness and capacity rules the database enforces with constraints.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) put(user *models.User) *models.User {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	} else if user.ID > f.nextID {
		f.nextID = user.ID
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.put(user)
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) put(student *models.Student) *models.Student {
	if student.ID == 0 {
		f.nextID++
		student.ID = f.nextID
	} else if student.ID > f.nextID {
		f.nextID = student.ID
	}
	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = time.Now()
	}
	f.students[student.ID] = student
	return student
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if existing.UserID == student.UserID {
			return apperrors.ErrStudentProfileExists
		}
	}
	f.put(student)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) List(_ context.Context, skip, limit int) ([]*models.Student, error) {
	var all []*models.Student
	for id := int64(1); id <= f.nextID; id++ {
		if student, ok := f.students[id]; ok {
			all = append(all, student)
		}
	}
	return paginate(all, skip, limit), nil
}

func (f *fakeStudentStore) Update(_ context.Context, id int64, upd *dto.UpdateStudentRequest) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if upd.DateOfBirth != nil {
		student.DateOfBirth = upd.DateOfBirth
	}
	if upd.Gender != nil {
		student.Gender = upd.Gender
	}
	if upd.Address != nil {
		student.Address = upd.Address
	}
	if upd.EmergencyContact != nil {
		student.EmergencyContact = upd.EmergencyContact
	}
	return student, nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeInstructorStore struct {
	instructors map[int64]*models.Instructor
	nextID      int64
}

func newFakeInstructorStore() *fakeInstructorStore {
	return &fakeInstructorStore{instructors: make(map[int64]*models.Instructor)}
}

func (f *fakeInstructorStore) put(instructor *models.Instructor) *models.Instructor {
	if instructor.ID == 0 {
		f.nextID++
		instructor.ID = f.nextID
	} else if instructor.ID > f.nextID {
		f.nextID = instructor.ID
	}
	if instructor.HireDate.IsZero() {
		instructor.HireDate = time.Now()
	}
	f.instructors[instructor.ID] = instructor
	return instructor
}

func (f *fakeInstructorStore) Create(_ context.Context, instructor *models.Instructor) error {
	for _, existing := range f.instructors {
		if existing.EmployeeID == instructor.EmployeeID {
			return apperrors.ErrEmployeeIDAlreadyExists
		}
		if existing.UserID == instructor.UserID {
			return apperrors.ErrInstructorProfileExists
		}
	}
	f.put(instructor)
	return nil
}

func (f *fakeInstructorStore) GetByID(_ context.Context, id int64) (*models.Instructor, error) {
	instructor, ok := f.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

func (f *fakeInstructorStore) List(_ context.Context, skip, limit int) ([]*models.Instructor, error) {
	var all []*models.Instructor
	for id := int64(1); id <= f.nextID; id++ {
		if instructor, ok := f.instructors[id]; ok {
			all = append(all, instructor)
		}
	}
	return paginate(all, skip, limit), nil
}

func (f *fakeInstructorStore) Update(_ context.Context, id int64, upd *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	instructor, ok := f.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	if upd.Department != nil {
		instructor.Department = *upd.Department
	}
	if upd.Salary != nil {
		instructor.Salary = upd.Salary
	}
	if upd.OfficeLocation != nil {
		instructor.OfficeLocation = upd.OfficeLocation
	}
	return instructor, nil
}

func (f *fakeInstructorStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	delete(f.instructors, id)
	return nil
}

type fakeCourseStore struct {
	courses     map[int64]*models.Course
	enrollments *fakeEnrollmentStore
	nextID      int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) put(course *models.Course) *models.Course {
	if course.ID == 0 {
		f.nextID++
		course.ID = f.nextID
	} else if course.ID > f.nextID {
		f.nextID = course.ID
	}
	course.CreatedAt = time.Now()
	f.courses[course.ID] = course
	return course
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeExists
		}
	}
	f.put(course)
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if f.enrollments != nil {
		course.EnrolledCount = f.enrollments.activeCount(id)
	}
	return course, nil
}

func (f *fakeCourseStore) List(_ context.Context, skip, limit int) ([]*models.Course, error) {
	var all []*models.Course
	for id := int64(1); id <= f.nextID; id++ {
		if course, ok := f.courses[id]; ok {
			all = append(all, course)
		}
	}
	return paginate(all, skip, limit), nil
}

func (f *fakeCourseStore) ListByInstructor(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var out []*models.Course
	for id := int64(1); id <= f.nextID; id++ {
		if course, ok := f.courses[id]; ok && course.InstructorID == instructorID {
			out = append(out, course)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Update(_ context.Context, id int64, upd *dto.UpdateCourseRequest) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Description != nil {
		course.Description = upd.Description
	}
	if upd.Credits != nil {
		course.Credits = *upd.Credits
	}
	if upd.InstructorID != nil {
		course.InstructorID = *upd.InstructorID
	}
	if upd.MaxStudents != nil {
		course.MaxStudents = *upd.MaxStudents
	}
	if upd.Status != nil {
		course.Status = *upd.Status
	}
	return course, nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if f.enrollments != nil {
		for _, enrollment := range f.enrollments.enrollments {
			if enrollment.CourseID == id {
				return apperrors.ErrResourceInUse
			}
		}
	}
	delete(f.courses, id)
	return nil
}

type fakeEnrollmentStore struct {
	enrollments map[int64]*models.Enrollment
	courses     *fakeCourseStore
	nextID      int64
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	store := &fakeEnrollmentStore{
		enrollments: make(map[int64]*models.Enrollment),
		courses:     courses,
	}
	if courses != nil {
		courses.enrollments = store
	}
	return store
}

func (f *fakeEnrollmentStore) activeCount(courseID int64) int64 {
	var count int64
	for _, enrollment := range f.enrollments {
		if enrollment.CourseID == courseID && enrollment.Status == models.EnrollmentEnrolled {
			count++
		}
	}
	return count
}

func (f *fakeEnrollmentStore) withCourse(enrollment *models.Enrollment) *models.Enrollment {
	if course, ok := f.courses.courses[enrollment.CourseID]; ok {
		enrollment.Course = &models.Course{ID: course.ID, InstructorID: course.InstructorID}
	}
	return enrollment
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	course, ok := f.courses.courses[enrollment.CourseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if f.activeCount(course.ID) >= int64(course.MaxStudents) {
		return apperrors.ErrCourseFull
	}
	for _, existing := range f.enrollments {
		if existing.StudentID == enrollment.StudentID &&
			existing.CourseID == enrollment.CourseID &&
			existing.Status == models.EnrollmentEnrolled {
			return apperrors.ErrAlreadyEnrolled
		}
	}

	f.nextID++
	enrollment.ID = f.nextID
	enrollment.EnrollmentDate = time.Now()
	f.enrollments[enrollment.ID] = enrollment
	return nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return f.withCourse(enrollment), nil
}

func (f *fakeEnrollmentStore) List(_ context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, error) {
	var all []*models.Enrollment
	for id := int64(1); id <= f.nextID; id++ {
		enrollment, ok := f.enrollments[id]
		if !ok {
			continue
		}
		if filter.StudentID != nil && enrollment.StudentID != *filter.StudentID {
			continue
		}
		if filter.CourseID != nil && enrollment.CourseID != *filter.CourseID {
			continue
		}
		all = append(all, f.withCourse(enrollment))
	}
	return paginate(all, skip, limit), nil
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	return f.List(context.Background(), dto.EnrollmentFilter{StudentID: &studentID}, 0, 100)
}

func (f *fakeEnrollmentStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	return f.List(context.Background(), dto.EnrollmentFilter{CourseID: &courseID}, 0, 100)
}

func (f *fakeEnrollmentStore) Update(_ context.Context, id int64, upd *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	if upd.Status != nil {
		enrollment.Status = *upd.Status
	}
	if upd.Grade != nil {
		enrollment.Grade = upd.Grade
	}
	return enrollment, nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrollments, id)
	return nil
}

func paginate[T any](rows []T, skip, limit int) []T {
	if skip >= len(rows) {
		return nil
	}
	rows = rows[skip:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
