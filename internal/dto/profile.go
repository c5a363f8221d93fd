package dto

import "github.com/akashadhithyan11707-web/collage-chatbot/internal/models"

type TeacherProfileRequest struct {
	Name       string `json:"name" form:"name"`
	Department string `json:"department" form:"department"`
	Age        string `json:"age" form:"age"`
	BloodGroup string `json:"blood_group" form:"blood_group"`
}

type ProfileResponse struct {
	User          UserResponse          `json:"user"`
	Subjects      []string              `json:"subjects"`
	ParentDetails *models.ParentDetails `json:"parent_details,omitempty"`
}

type StudentDashboardResponse struct {
	User          UserResponse          `json:"user"`
	NotesLink     string                `json:"notes_link"`
	SubjectNotes  models.SubjectNotes   `json:"subject_notes" swaggertype:"object,string"`
	Subjects      []string              `json:"subjects"`
	ParentDetails *models.ParentDetails `json:"parent_details,omitempty"`
	SemesterMarks models.SemesterMarks  `json:"semester_marks" swaggertype:"object"`
	Arrears       models.Arrears        `json:"arrears"`
}

type StudentSummary struct {
	UserResponse
	Subjects      []string              `json:"subjects"`
	ParentDetails *models.ParentDetails `json:"parent_details,omitempty"`
	NotesLink     string                `json:"notes_link,omitempty"`
}

type TeacherDashboardResponse struct {
	Students []StudentSummary `json:"students"`
	Total    int              `json:"total"`
}
