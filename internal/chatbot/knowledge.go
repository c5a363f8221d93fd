package chatbot

type Category string

const (
	CategoryCourse    Category = "course"
	CategoryFee       Category = "fee"
	CategoryAdmission Category = "admission"
	CategoryTiming    Category = "timing"
	CategoryContact   Category = "contact"
	CategoryGreeting  Category = "greeting"
	CategoryCollege   Category = "college"
)

// KnowledgeEntry is one topic of the public chatbot.
type KnowledgeEntry struct {
	Category Category
	Keywords []string
	Response string
}

// knowledgeBase is checked top to bottom and the first entry with a
// matching keyword answers. Keywords overlap as substrings ("ca" is inside
// "location"), so the order below is part of the behaviour.
var knowledgeBase = []KnowledgeEntry{
	{
		Category: CategoryCourse,
		Keywords: []string{"course", "courses", "program", "programs", "degree", "degrees", "bca", "bsc", "bcom", "bba", "ca"},
		Response: "Sri Aravindhar Arts and Science College offers the following courses:\n\n" +
			"All courses are 3-year programs with 6 semesters, affiliated to Annamalai University.\n\n" +
			"📚 COMPUTER SCIENCE DEPARTMENT:\n\n" +
			"• BCA (Bachelor of Computer Applications)\n" +
			"  Subjects: Programming in C, Data Structures, Database Management, Web Technologies, Software Engineering, Computer Networks, Operating Systems, Object-Oriented Programming, Java Programming, Python Programming, Mobile Application Development, Cloud Computing\n\n" +
			"• BSc CS (Bachelor of Science in Computer Science)\n" +
			"  Subjects: Programming Fundamentals, Data Structures & Algorithms, Database Systems, Computer Networks, Operating Systems, Software Engineering, Web Development, Mobile Computing, Artificial Intelligence, Machine Learning, Cloud Computing, Cyber Security\n\n" +
			"🔢 MATHEMATICS DEPARTMENT:\n\n" +
			"• BSc Maths (Bachelor of Science in Mathematics)\n" +
			"  Subjects: Algebra, Calculus, Differential Equations, Statistics, Probability, Linear Algebra, Discrete Mathematics, Numerical Methods, Mathematical Modeling, Operations Research, Graph Theory, Real Analysis\n\n" +
			"🔬 SCIENCE DEPARTMENT:\n\n" +
			"• BSc Chemistry\n" +
			"  Subjects: Organic Chemistry, Inorganic Chemistry, Physical Chemistry, Analytical Chemistry, Biochemistry, Environmental Chemistry, Industrial Chemistry, Polymer Chemistry, Spectroscopy, Quantum Chemistry, Green Chemistry, Medicinal Chemistry\n\n" +
			"• BSc Physics\n" +
			"  Subjects: Mechanics, Thermodynamics, Electromagnetism, Optics, Quantum Mechanics, Nuclear Physics, Solid State Physics, Electronics, Mathematical Physics, Statistical Physics, Astrophysics, Modern Physics\n\n" +
			"💼 COMMERCE DEPARTMENT:\n\n" +
			"• BCom (Bachelor of Commerce)\n" +
			"  Subjects: Financial Accounting, Cost Accounting, Management Accounting, Business Law, Corporate Law, Income Tax, Banking & Insurance, Business Statistics, Business Mathematics, Marketing Management, Human Resource Management, Entrepreneurship\n\n" +
			"📊 BUSINESS DEPARTMENT:\n\n" +
			"• BBA (Bachelor of Business Administration)\n" +
			"  Subjects: Principles of Management, Marketing Management, Financial Management, Human Resource Management, Operations Management, Business Statistics, Business Law, Organizational Behavior, Strategic Management, Entrepreneurship, International Business, Business Communication\n\n" +
			"• CA (Chartered Accountancy)\n" +
			"  Subjects: Financial Accounting, Cost Accounting, Management Accounting, Auditing, Taxation, Corporate Law, Business Law, Financial Management, Information Technology, Economics, Business Mathematics, Statistics\n\n" +
			"For admission details, contact: 6381706363",
	},
	{
		Category: CategoryFee,
		Keywords: []string{"fee", "fees", "cost", "price", "tuition", "payment"},
		Response: "Our semester fee is ₹12,000 per semester. For detailed fee information and payment options, please contact the college office.",
	},
	{
		Category: CategoryAdmission,
		Keywords: []string{"admission", "admit", "apply", "application", "enroll", "enrollment"},
		Response: "Admissions are open! You can apply online through our website or visit the admissions office. " +
			"Required documents include 10th and 12th mark sheets, ID proof, and passport photos. " +
			"Application deadline is usually in May.",
	},
	{
		Category: CategoryTiming,
		Keywords: []string{"time", "timing", "schedule", "hours", "when", "open"},
		Response: "College timings are Monday to Friday, 9:30 AM to 3:30 PM. Office hours are 9:30 AM to 3:30 PM.",
	},
	{
		Category: CategoryContact,
		Keywords: []string{"contact", "phone", "email", "address", "location", "where"},
		Response: "You can contact us at:\n" +
			"Phone: 6381706363\n" +
			"Email: akashadhithyan11707@gmail.com\n" +
			"Address: Sedharapet, Vannur, Tamil Nadu\n" +
			"Office Hours: 9:30 AM - 3:30 PM (Mon-Fri)",
	},
	{
		Category: CategoryGreeting,
		Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
		Response: "Hello! Welcome to Sri Aravindhar Arts and Science College Chatbot.\n\n" +
			"We offer 3-year degree programs with 6 semesters across multiple departments.\n\n" +
			"How can I help you today? I can assist with:\n" +
			"- Courses and subjects (7-8+ subjects per course)\n" +
			"- Fees (₹12,000 per semester)\n" +
			"- Admissions\n" +
			"- Timings (9:30 AM - 3:30 PM)\n" +
			"- Contact Information",
	},
	{
		Category: CategoryCollege,
		Keywords: []string{"college", "name", "institution", "university"},
		Response: "Sri Aravindhar Arts and Science College, affiliated to Annamalai University.\n\n" +
			"📍 Location: Sedharapet, Vannur, Tamil Nadu\n\n" +
			"📅 Duration: All courses are 3-year programs\n\n" +
			"📚 Semesters: 6 semesters (2 semesters per year)\n\n" +
			"🎓 Programs Offered:\n" +
			"- BCA, BSc CS, BSc Maths, BSc Chemistry, BSc Physics\n" +
			"- BCom, BBA, CA\n\n" +
			"Each course includes 7-8+ subjects per semester, providing comprehensive education in respective fields.",
	},
}

const publicFallback = "I'm here to help! Sri Aravindhar Arts and Science College offers 3-year programs with 6 semesters.\n\n" +
	"You can ask me about:\n" +
	"- Courses and Subjects (7-8+ subjects per course)\n" +
	"- Fees (₹12,000 per semester)\n" +
	"- Admissions\n" +
	"- Timings (9:30 AM - 3:30 PM)\n" +
	"- Contact Information\n" +
	"- College Name\n\n" +
	"What would you like to know?"

// KnowledgeBase returns a copy of the public topics in match order.
func KnowledgeBase() []KnowledgeEntry {
	out := make([]KnowledgeEntry, len(knowledgeBase))
	copy(out, knowledgeBase)
	return out
}
