package dto

import (
	"encoding/json"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
)

type AddStudentRequest struct {
	EmailPhone string `json:"email_phone" form:"email_phone" validate:"required,email_or_phone"`
	Password   string `json:"password" form:"password" validate:"required"`
	Name       string `json:"name" form:"name"`
	RollNumber string `json:"roll_number" form:"roll_number"`
	Department string `json:"department" form:"department"`
}

// EditStudentRequest carries the form fields of the student edit dialog.
// Age is free text; anything that is not an integer clears it. Subjects is
// a comma-separated list.
type EditStudentRequest struct {
	Name               string `json:"name" form:"name"`
	RollNumber         string `json:"roll_number" form:"roll_number"`
	Department         string `json:"department" form:"department"`
	Age                string `json:"age" form:"age"`
	BloodGroup         string `json:"blood_group" form:"blood_group"`
	ParentName         string `json:"parent_name" form:"parent_name"`
	ParentPhone        string `json:"parent_phone" form:"parent_phone"`
	ParentEmail        string `json:"parent_email" form:"parent_email"`
	ParentRelationship string `json:"parent_relationship" form:"parent_relationship"`
	Subjects           string `json:"subjects" form:"subjects"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

type UpdateMarksRequest struct {
	Semester string `json:"semester" form:"semester" validate:"required"`
	Subject  string `json:"subject" form:"subject" validate:"required"`
	Marks    string `json:"marks" form:"marks" validate:"required"`
}

type UpdateArrearRequest struct {
	Subject string `json:"subject" form:"subject" validate:"required"`
	Status  string `json:"status" form:"status"`
}

type UpdateNotesLinkRequest struct {
	NotesLink string `json:"notes_link" form:"notes_link"`
}

type UpdateSubjectNotesRequest struct {
	Subject   string `json:"subject" form:"subject" validate:"required"`
	NotesLink string `json:"notes_link" form:"notes_link" validate:"required"`
}

// ChatbotQuestionsRequest accepts the questions either as a JSON array or
// as a string holding one, the way the dashboard form submits them.
type ChatbotQuestionsRequest struct {
	Questions json.RawMessage `json:"questions" swaggertype:"array,object"`
}

type ChatbotQuestionsResponse struct {
	Success   bool           `json:"success"`
	Questions models.QAPairs `json:"questions"`
}
