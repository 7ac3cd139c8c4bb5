package catalog

import "strings"

// Consultant is a bookable wellness professional.
type Consultant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image"`
	Bio         string   `json:"bio"`
}

// ConsultantOption is a (value, label) pair for selection UI. The empty
// value is reserved for "first available / no preference".
type ConsultantOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var consultants = []Consultant{
	{
		ID:          "dr-sarah-mitchell",
		Name:        "Dr. Sarah Mitchell",
		Title:       "Licensed Clinical Psychologist",
		Specialties: []string{"Anxiety & Stress", "Life Transitions", "Mindfulness"},
		Experience:  "12 years",
		Rating:      4.9,
		Reviews:     127,
		Image:       "https://images.pexels.com/photos/5212317/pexels-photo-5212317.jpeg?auto=compress&cs=tinysrgb&w=400",
		Bio:         "Dr. Mitchell specializes in helping individuals navigate life's challenges with evidence-based therapeutic approaches.",
	},
	{
		ID:          "marcus-johnson",
		Name:        "Marcus Johnson",
		Title:       "Certified Wellness Coach",
		Specialties: []string{"Goal Setting", "Motivation", "Habit Formation"},
		Experience:  "8 years",
		Rating:      4.8,
		Reviews:     94,
		Image:       "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg?auto=compress&cs=tinysrgb&w=400",
		Bio:         "Marcus empowers clients to create lasting positive changes through personalized coaching strategies.",
	},
	{
		ID:          "dr-emily-chen",
		Name:        "Dr. Emily Chen",
		Title:       "Holistic Health Practitioner",
		Specialties: []string{"Mind-Body Connection", "Nutrition", "Energy Healing"},
		Experience:  "10 years",
		Rating:      4.9,
		Reviews:     156,
		Image:       "https://images.pexels.com/photos/6098089/pexels-photo-6098089.jpeg?auto=compress&cs=tinysrgb&w=400",
		Bio:         "Dr. Chen integrates traditional wellness practices with modern therapeutic techniques.",
	},
}

// Consultants returns the ordered consultant catalog.
func Consultants() []Consultant {
	out := make([]Consultant, len(consultants))
	copy(out, consultants)
	return out
}

// ConsultantByID looks up a consultant by identifier.
func ConsultantByID(id string) (Consultant, bool) {
	for _, c := range consultants {
		if c.ID == id {
			return c, true
		}
	}
	return Consultant{}, false
}

// ConsultantOptions builds the selection options for booking forms: the
// "First Available" sentinel followed by one option per consultant in
// catalog order, labeled "<name> - <last two words of title>".
func ConsultantOptions() []ConsultantOption {
	options := make([]ConsultantOption, 0, len(consultants)+1)
	options = append(options, ConsultantOption{Value: "", Label: "First Available"})
	for _, c := range consultants {
		options = append(options, ConsultantOption{
			Value: c.ID,
			Label: c.Name + " - " + shortTitle(c.Title),
		})
	}
	return options
}

// shortTitle keeps the last two words of a consultant title, e.g.
// "Licensed Clinical Psychologist" -> "Clinical Psychologist".
func shortTitle(title string) string {
	words := strings.Fields(title)
	if len(words) <= 2 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[len(words)-2:], " ")
}
