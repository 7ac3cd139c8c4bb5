package catalog

// Service represents one line of business, active or placeholder.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Href        string   `json:"href"`
	Active      bool     `json:"active"`
	Features    []string `json:"features"`
}

// In the current catalog exactly one service (wellness) is active; the rest
// collect waitlist interest. That is a property of the data, not a rule the
// code enforces.
var services = []Service{
	{
		ID:          "wellness",
		Title:       "Wellness & Consultancy",
		Description: "Professional wellness coaching and mental health support",
		Image:       "https://images.pexels.com/photos/3799283/pexels-photo-3799283.jpeg?auto=compress&cs=tinysrgb&w=400",
		Href:        "/wellness",
		Active:      true,
		Features:    []string{"1-on-1 Sessions", "Group Workshops", "Virtual & In-person"},
	},
	{
		ID:          "nursery",
		Title:       "Nursery & Playground",
		Description: "Safe, nurturing childcare with educational activities",
		Image:       "https://images.pexels.com/photos/8613082/pexels-photo-8613082.jpeg?auto=compress&cs=tinysrgb&w=400",
		Href:        "/nursery",
		Active:      false,
		Features:    []string{"Age-appropriate Activities", "Qualified Caregivers", "Safe Environment"},
	},
	{
		ID:          "salon",
		Title:       "Beauty Salon",
		Description: "Full-service salon for all your beauty and grooming needs",
		Image:       "https://images.pexels.com/photos/3993449/pexels-photo-3993449.jpeg?auto=compress&cs=tinysrgb&w=400",
		Href:        "/salon",
		Active:      false,
		Features:    []string{"Hair Styling", "Nail Care", "Skincare Treatments"},
	},
	{
		ID:          "laundromart",
		Title:       "Laundromart",
		Description: "Convenient laundry and dry cleaning services",
		Image:       "https://images.pexels.com/photos/5217876/pexels-photo-5217876.jpeg?auto=compress&cs=tinysrgb&w=400",
		Href:        "/laundromart",
		Active:      false,
		Features:    []string{"Wash & Fold", "Dry Cleaning", "Express Service"},
	},
	{
		ID:          "supermart",
		Title:       "Supermart",
		Description: "Fresh groceries and daily essentials at your convenience",
		Image:       "https://images.pexels.com/photos/264547/pexels-photo-264547.jpeg?auto=compress&cs=tinysrgb&w=400",
		Href:        "/supermart",
		Active:      false,
		Features:    []string{"Fresh Produce", "Local Products", "Online Ordering"},
	},
}

// placeholderNames maps a placeholder service ID to the display name used on
// its coming-soon page. These names key the ServiceInfo table and are
// embedded unmodified into waitlist payloads and confirmation messages.
var placeholderNames = map[string]string{
	"nursery":     "Nursery/Playground",
	"salon":       "Salon",
	"laundromart": "Laundromart",
	"supermart":   "Supermart",
}

// Services returns the ordered service catalog.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceByID looks up a service by its identifier.
func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// PlaceholderName returns the coming-soon display name for a placeholder
// service ID. Active services have no placeholder name.
func PlaceholderName(id string) (string, bool) {
	name, ok := placeholderNames[id]
	return name, ok
}
