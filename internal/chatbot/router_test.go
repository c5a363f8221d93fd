package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func responseOf(t *testing.T, category Category) string {
	t.Helper()
	for _, entry := range knowledgeBase {
		if entry.Category == category {
			return entry.Response
		}
	}
	t.Fatalf("no knowledge entry for %q", category)
	return ""
}

func TestKnowledgeBase_Order(t *testing.T) {
	var got []Category
	for _, entry := range KnowledgeBase() {
		assert.NotEmpty(t, entry.Keywords, entry.Category)
		got = append(got, entry.Category)
	}
	assert.Equal(t, []Category{
		CategoryCourse, CategoryFee, CategoryAdmission, CategoryTiming,
		CategoryContact, CategoryGreeting, CategoryCollege,
	}, got)
}

func TestPublicRouter_Answer(t *testing.T) {
	router := NewPublicRouter()

	tests := []struct {
		name    string
		message string
		want    Category
	}{
		{name: "fee", message: "fee", want: CategoryFee},
		{name: "fees upper case", message: "  What are the FEES?  ", want: CategoryFee},
		{name: "fee structure", message: "fee structure please", want: CategoryFee},
		{name: "tuition", message: "tuition", want: CategoryFee},
		{name: "course", message: "which courses do you offer", want: CategoryCourse},
		{name: "course beats college", message: "tell me about this college's BCA course", want: CategoryCourse},
		{name: "bsc", message: "bsc physics", want: CategoryCourse},
		{name: "admission", message: "how to apply", want: CategoryAdmission},
		{name: "timing", message: "college timing", want: CategoryTiming},
		{name: "contact", message: "your email", want: CategoryContact},
		{name: "contact beats greeting", message: "hello, phone number?", want: CategoryContact},
		{name: "greeting", message: "hey", want: CategoryGreeting},
		{name: "good morning", message: "good morning", want: CategoryGreeting},
		{name: "college", message: "university", want: CategoryCollege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, responseOf(t, tt.want), router.Answer(tt.message))
		})
	}
}

func TestPublicRouter_Fallback(t *testing.T) {
	router := NewPublicRouter()

	for _, message := range []string{"", "   ", "xyz", "lol", "bus route"} {
		t.Run(message, func(t *testing.T) {
			got := router.Answer(message)
			assert.Equal(t, publicFallback, got)
			for _, topic := range []string{"Courses", "Fees", "Admissions", "Timings", "Contact", "College Name"} {
				assert.Contains(t, got, topic)
			}
		})
	}
}

func TestPublicRouter_Match(t *testing.T) {
	router := NewPublicRouter()

	entry, ok := router.Match("FEE")
	assert.True(t, ok)
	assert.Equal(t, CategoryFee, entry.Category)

	_, ok = router.Match("xyz")
	assert.False(t, ok)
}

func TestPublicRouter_Idempotent(t *testing.T) {
	router := NewPublicRouter()
	for _, message := range []string{"fee", "xyz", "hello"} {
		assert.Equal(t, router.Answer(message), router.Answer(message))
	}
}
