package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/jsonx"

	"github.com/google/uuid"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// StudentRecord is the decoded, read-only view of a student row used by
// the personalized chatbot.
type StudentRecord struct {
	ID            uuid.UUID
	Identity      string
	Name          string
	SemesterMarks SemesterMarks
	Arrears       Arrears
	Subjects      []string
	CustomQA      QAPairs
}

// Mark keeps the stored JSON of a single mark. Teachers enter marks as
// text, older rows may hold numbers; both are rendered as written.
type Mark struct {
	raw json.RawMessage
}

func NewMark(text string) Mark {
	data, _ := json.Marshal(text)
	return Mark{raw: data}
}

// String renders a string mark unquoted and any other JSON value compacted.
// A missing or null mark renders as "".
func (m Mark) String() string {
	if m.IsNull() {
		return ""
	}
	if m.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(m.raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m.raw); err != nil {
		return string(m.raw)
	}
	return buf.String()
}

// IsNull reports whether the mark is absent or JSON null.
func (m Mark) IsNull() bool {
	trimmed := bytes.TrimSpace(m.raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Or returns the rendered mark, or def when it is null.
func (m Mark) Or(def string) string {
	if m.IsNull() {
		return def
	}
	return m.String()
}

func (m Mark) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	m.raw = append(m.raw[:0], data...)
	return nil
}

// SemesterEntry is either a subject -> mark map kept in stored order, or
// a legacy scalar holding the whole semester result.
type SemesterEntry struct {
	Subjects *orderedmap.OrderedMap[string, Mark]
	Legacy   Mark
}

func (e SemesterEntry) IsLegacy() bool {
	return e.Subjects == nil
}

func (e SemesterEntry) MarshalJSON() ([]byte, error) {
	if e.Subjects != nil {
		return e.Subjects.MarshalJSON()
	}
	return e.Legacy.MarshalJSON()
}

func (e *SemesterEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		subjects := orderedmap.New[string, Mark]()
		if err := subjects.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		e.Subjects = subjects
		return nil
	}
	e.Subjects = nil
	return e.Legacy.UnmarshalJSON(trimmed)
}

// SemesterMarks maps a semester label to its marks.
type SemesterMarks map[string]SemesterEntry

// Semesters returns the semester labels in ascending lexicographic order.
func (m SemesterMarks) Semesters() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set records mark for subject in semester. A legacy scalar semester is
// replaced by a subject map.
func (m SemesterMarks) Set(semester, subject string, mark Mark) {
	entry, ok := m[semester]
	if !ok || entry.IsLegacy() {
		entry = SemesterEntry{Subjects: orderedmap.New[string, Mark]()}
	}
	entry.Subjects.Set(subject, mark)
	m[semester] = entry
}

// Arrear is one arrears entry. Subject and status keep their stored JSON,
// so a numeric status renders as written; missing or null fields render as
// the caller's default.
type Arrear struct {
	Subject *Mark `json:"subject,omitempty" swaggertype:"string"`
	Status  *Mark `json:"status,omitempty" swaggertype:"string"`
}

func NewArrear(subject, status string) Arrear {
	sub, st := NewMark(subject), NewMark(status)
	return Arrear{Subject: &sub, Status: &st}
}

func (a Arrear) SubjectOr(def string) string {
	if a.Subject == nil {
		return def
	}
	return a.Subject.Or(def)
}

func (a Arrear) StatusOr(def string) string {
	if a.Status == nil {
		return def
	}
	return a.Status.Or(def)
}

// Arrears decodes leniently: elements that are not objects are skipped.
type Arrears []Arrear

func (a *Arrears) UnmarshalJSON(data []byte) error {
	items, err := objectElements(data)
	if err != nil {
		return err
	}
	out := make(Arrears, 0, len(items))
	for _, item := range items {
		var arrear Arrear
		if err := json.Unmarshal(item, &arrear); err != nil {
			continue
		}
		out = append(out, arrear)
	}
	*a = out
	return nil
}

// objectElements splits a JSON array and keeps the elements that are
// objects.
func objectElements(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return lo.Filter(items, func(item json.RawMessage, _ int) bool {
		trimmed := bytes.TrimSpace(item)
		return len(trimmed) > 0 && trimmed[0] == '{'
	}), nil
}

// QAPair is a teacher-authored question and its answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QAPairs decodes leniently: elements that are not objects holding both a
// question and an answer are skipped. Non-string values are rendered as
// text, the way Mark renders them.
type QAPairs []QAPair

func (q *QAPairs) UnmarshalJSON(data []byte) error {
	items, err := objectElements(data)
	if err != nil {
		return err
	}
	out := make(QAPairs, 0, len(items))
	for _, item := range items {
		var pair struct {
			Question *Mark `json:"question"`
			Answer   *Mark `json:"answer"`
		}
		if err := json.Unmarshal(item, &pair); err != nil {
			continue
		}
		if pair.Question == nil || pair.Answer == nil {
			continue
		}
		out = append(out, QAPair{Question: pair.Question.String(), Answer: pair.Answer.String()})
	}
	*q = out
	return nil
}

// SubjectList is the subjects column. Each element is rendered like a
// Mark, so one number among the names does not hide the rest; nulls are
// dropped.
type SubjectList []string

func (l *SubjectList) UnmarshalJSON(data []byte) error {
	var items []Mark
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = lo.FilterMap(items, func(m Mark, _ int) (string, bool) {
		return m.String(), !m.IsNull()
	})
	return nil
}

// SubjectNotes maps a subject to its notes link, in stored order.
type SubjectNotes struct {
	*orderedmap.OrderedMap[string, string]
}

func NewSubjectNotes() SubjectNotes {
	return SubjectNotes{OrderedMap: orderedmap.New[string, string]()}
}

func (n SubjectNotes) MarshalJSON() ([]byte, error) {
	if n.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return n.OrderedMap.MarshalJSON()
}

func (n *SubjectNotes) UnmarshalJSON(data []byte) error {
	notes := orderedmap.New[string, string]()
	if err := notes.UnmarshalJSON(data); err != nil {
		return err
	}
	n.OrderedMap = notes
	return nil
}

type ParentDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

func (p ParentDetails) IsEmpty() bool {
	return p.Name == "" && p.Phone == "" && p.Email == "" && p.Relationship == ""
}

func (u *User) DecodedMarks() jsonx.Optional[SemesterMarks] {
	return jsonx.DecodeOptional(u.SemesterMarks, SemesterMarks{})
}

func (u *User) DecodedArrears() jsonx.Optional[Arrears] {
	return jsonx.DecodeOptional(u.Arrears, Arrears{})
}

func (u *User) DecodedSubjects() jsonx.Optional[[]string] {
	decoded := jsonx.DecodeOptional(u.Subjects, SubjectList{})
	return jsonx.Optional[[]string]{
		Value:   []string(decoded.Value),
		Present: decoded.Present,
		Err:     decoded.Err,
	}
}

func (u *User) DecodedQuestions() jsonx.Optional[QAPairs] {
	return jsonx.DecodeOptional(u.ChatbotQuestions, QAPairs{})
}

func (u *User) DecodedSubjectNotes() jsonx.Optional[SubjectNotes] {
	return jsonx.DecodeOptional(u.SubjectNotes, NewSubjectNotes())
}

func (u *User) DecodedParentDetails() jsonx.Optional[ParentDetails] {
	return jsonx.DecodeOptional(u.ParentDetails, ParentDetails{})
}

// DecodeStudentRecord builds the chatbot view of u. The record is always
// usable; the returned error lists the columns that failed to decode and
// is meant for logging only.
func DecodeStudentRecord(u *User) (StudentRecord, error) {
	marks := u.DecodedMarks()
	arrears := u.DecodedArrears()
	subjects := u.DecodedSubjects()
	questions := u.DecodedQuestions()

	var errs []error
	for _, col := range []struct {
		name string
		err  error
	}{
		{"semester_marks", marks.Err},
		{"arrears", arrears.Err},
		{"subjects", subjects.Err},
		{"chatbot_questions", questions.Err},
	} {
		if col.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.name, col.err))
		}
	}

	return StudentRecord{
		ID:            u.ID,
		Identity:      u.EmailPhone,
		Name:          u.DisplayName(""),
		SemesterMarks: marks.Get(),
		Arrears:       arrears.Get(),
		Subjects:      subjects.Get(),
		CustomQA:      questions.Get(),
	}, errors.Join(errs...)
}
