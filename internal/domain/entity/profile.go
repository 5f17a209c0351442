package entity

// StudentProfile is created empty alongside a student user and filled in
// by the student afterwards.
type StudentProfile struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	StudentID   string `json:"student_id"`
	Major       string `json:"major"`
	YearOfStudy string `json:"year_of_study"`
	GPA         string `json:"gpa"`
	University  string `json:"university"`
	Bio         string `json:"bio"`
}

// FacultyProfile is the faculty counterpart of StudentProfile.
type FacultyProfile struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
	University string `json:"university"`
}

// StudentProfileUpdate carries the fields a student may change on their
// profile. Nil means "leave unchanged"; the field set is fixed by the
// struct shape rather than a runtime allow-list.
type StudentProfileUpdate struct {
	StudentID   *string
	Major       *string
	YearOfStudy *string
	GPA         *string
	University  *string
	Bio         *string
}

// FacultyProfileUpdate is the faculty counterpart of StudentProfileUpdate.
type FacultyProfileUpdate struct {
	EmployeeID *string
	Department *string
	Position   *string
	University *string
}
