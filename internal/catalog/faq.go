package catalog

// FAQ is a question/answer pair shown on the wellness page.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var wellnessFAQs = []FAQ{
	{
		ID:       "first-session",
		Question: "What can I expect from my first session?",
		Answer:   "Your first session is a comprehensive consultation where we'll discuss your goals, concerns, and create a personalized wellness plan. We'll also answer any questions you have about the process.",
	},
	{
		ID:       "online-sessions",
		Question: "Are sessions available online?",
		Answer:   "Yes! We offer both in-person and virtual sessions to accommodate your preferences and schedule. Our virtual sessions are just as effective and provide the same level of personalized care.",
	},
	{
		ID:       "frequency",
		Question: "How often should I schedule sessions?",
		Answer:   "The frequency depends on your individual needs and goals. Many clients start with weekly sessions, then transition to bi-weekly or monthly as they progress. Your consultant will recommend the best schedule for you.",
	},
	{
		ID:       "insurance",
		Question: "Do you accept insurance?",
		Answer:   "We accept most major insurance plans and can provide documentation for reimbursement. Please contact us with your insurance information to verify coverage.",
	},
	{
		ID:       "cancellation",
		Question: "What if I need to cancel or reschedule?",
		Answer:   "We understand that schedules change. We ask for at least 24 hours notice for cancellations or rescheduling to avoid any fees. Emergency situations are handled case-by-case.",
	},
}

// FAQs returns the ordered FAQ list.
func FAQs() []FAQ {
	out := make([]FAQ, len(wellnessFAQs))
	copy(out, wellnessFAQs)
	return out
}
