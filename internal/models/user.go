package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User is a row of the users table. Students and teachers share it; the
// JSON columns are only populated for students.
type User struct {
	ID               uuid.UUID `db:"id"`
	EmailPhone       string    `db:"email_phone"`
	Password         string    `db:"password"`
	Role             Role      `db:"role"`
	Name             *string   `db:"name"`
	RollNumber       *string   `db:"roll_number"`
	Department       *string   `db:"department"`
	PhotoPath        *string   `db:"photo_path"`
	SemesterMarks    *string   `db:"semester_marks"` // JSON
	Arrears          *string   `db:"arrears"`        // JSON
	NotesLink        *string   `db:"notes_link"`
	SubjectNotes     *string   `db:"subject_notes"` // JSON
	Age              *int      `db:"age"`
	BloodGroup       *string   `db:"blood_group"`
	ParentDetails    *string   `db:"parent_details"`    // JSON
	ChatbotQuestions *string   `db:"chatbot_questions"` // JSON
	Subjects         *string   `db:"subjects"`          // JSON
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// DisplayName returns the stored name or fallback when it is empty.
func (u *User) DisplayName(fallback string) string {
	if u.Name == nil || *u.Name == "" {
		return fallback
	}
	return *u.Name
}

// StudentDetails is the set of columns a teacher edits in one go.
type StudentDetails struct {
	Name          string
	RollNumber    string
	Department    string
	Age           *int
	BloodGroup    string
	ParentDetails *string
	Subjects      *string
}

// TeacherProfile is the set of columns a teacher edits on their own row.
type TeacherProfile struct {
	Name       string
	Department string
	Age        *int
	BloodGroup string
}

// RecordField names a single student column updated by teacher operations.
type RecordField string

const (
	FieldSemesterMarks    RecordField = "semester_marks"
	FieldArrears          RecordField = "arrears"
	FieldNotesLink        RecordField = "notes_link"
	FieldSubjectNotes     RecordField = "subject_notes"
	FieldChatbotQuestions RecordField = "chatbot_questions"
)

// Value returns the current content of field on u.
func (u *User) Value(field RecordField) *string {
	switch field {
	case FieldSemesterMarks:
		return u.SemesterMarks
	case FieldArrears:
		return u.Arrears
	case FieldNotesLink:
		return u.NotesLink
	case FieldSubjectNotes:
		return u.SubjectNotes
	case FieldChatbotQuestions:
		return u.ChatbotQuestions
	}
	return nil
}

// SetValue replaces the content of field on u.
func (u *User) SetValue(field RecordField, v *string) {
	switch field {
	case FieldSemesterMarks:
		u.SemesterMarks = v
	case FieldArrears:
		u.Arrears = v
	case FieldNotesLink:
		u.NotesLink = v
	case FieldSubjectNotes:
		u.SubjectNotes = v
	case FieldChatbotQuestions:
		u.ChatbotQuestions = v
	}
}

func (f RecordField) Valid() bool {
	switch f {
	case FieldSemesterMarks, FieldArrears, FieldNotesLink, FieldSubjectNotes, FieldChatbotQuestions:
		return true
	}
	return false
}
