package chatbot

import (
	"fmt"
	"strings"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
)

var (
	marksKeywords    = []string{"mark", "grade", "score", "semester", "cgpa", "percentage", "result"}
	arrearsKeywords  = []string{"arrear", "backlog", "failed", "clear", "clearance"}
	subjectsKeywords = []string{"subject", "subjects", "course", "courses"}
)

const (
	noMarksResponse    = "No marks available yet. Please contact your teacher for updates."
	noArrearsResponse  = "✅ Great news! You have no arrears."
	noSubjectsResponse = "No subjects registered yet. Please contact your teacher."
	unknownField       = "Unknown"
	defaultStudentName = "Student"
)

// StudentRouter answers a logged-in student from their own record.
type StudentRouter struct{}

func NewStudentRouter() *StudentRouter {
	return &StudentRouter{}
}

// Answer checks, in order: the teacher's custom questions, marks, arrears,
// subjects, and finally greets the student with the list of supported
// queries. The record is never modified.
func (r *StudentRouter) Answer(rec models.StudentRecord, message string) string {
	msg := Normalize(message)

	if answer, ok := matchCustomQA(rec.CustomQA, msg); ok {
		return answer
	}

	switch {
	case containsAny(msg, marksKeywords):
		return marksReport(rec.SemesterMarks)
	case containsAny(msg, arrearsKeywords):
		return arrearsReport(rec.Arrears)
	case containsAny(msg, subjectsKeywords):
		return subjectsReport(rec.Subjects)
	}

	return greeting(rec.Name)
}

// matchCustomQA accepts a pair when either text contains the other. A short
// stored question therefore matches many messages; the first pair wins.
func matchCustomQA(pairs models.QAPairs, msg string) (string, bool) {
	for _, qa := range pairs {
		question := strings.ToLower(qa.Question)
		if strings.Contains(msg, question) || strings.Contains(question, msg) {
			return qa.Answer, true
		}
	}
	return "", false
}

func marksReport(marks models.SemesterMarks) string {
	if len(marks) == 0 {
		return noMarksResponse
	}

	var b strings.Builder
	b.WriteString("Here are your semester marks:\n\n")
	for _, semester := range marks.Semesters() {
		entry := marks[semester]
		if entry.IsLegacy() {
			fmt.Fprintf(&b, "Semester %s: %s\n", semester, entry.Legacy.Or(unknownField))
			continue
		}
		fmt.Fprintf(&b, "📚 Semester %s:\n", semester)
		for pair := entry.Subjects.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "  • %s: %s\n", pair.Key, pair.Value.Or(unknownField))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func arrearsReport(arrears models.Arrears) string {
	if len(arrears) == 0 {
		return noArrearsResponse
	}

	var b strings.Builder
	b.WriteString("Here is your arrears status:\n\n")
	for _, a := range arrears {
		fmt.Fprintf(&b, "%s: %s\n", a.SubjectOr(unknownField), a.StatusOr(unknownField))
	}
	return b.String()
}

func subjectsReport(subjects []string) string {
	if len(subjects) == 0 {
		return noSubjectsResponse
	}

	var b strings.Builder
	b.WriteString("Your subjects are:\n\n")
	for i, subject := range subjects {
		fmt.Fprintf(&b, "%d. %s\n", i+1, subject)
	}
	return b.String()
}

func greeting(name string) string {
	if name == "" {
		name = defaultStudentName
	}
	return fmt.Sprintf("Hello %s! I can help you with:\n"+
		"- Your marks and grades\n"+
		"- Arrears status\n"+
		"- Your subjects\n"+
		"- Custom questions set by your teacher\n\n"+
		"What would you like to know?", name)
}
