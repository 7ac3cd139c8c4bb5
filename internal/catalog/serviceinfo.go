package catalog

import "fmt"

// ServiceInfo is the extended descriptive content for a placeholder service,
// keyed by the service's coming-soon display name.
type ServiceInfo struct {
	Description string    `json:"description"`
	ETA         string    `json:"eta"`
	Image       string    `json:"image"`
	Features    []string  `json:"features"`
	Benefits    []Benefit `json:"benefits"`
}

// Benefit is a titled selling point on a coming-soon page.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NotFoundError reports a service name with no ServiceInfo entry. The set of
// names routed to coming-soon pages is fixed at build time, so this always
// indicates a configuration defect rather than a user error.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no service info for %q", e.Name)
}

var serviceInfo = map[string]ServiceInfo{
	"Nursery/Playground": {
		Description: "A safe, nurturing environment for children with age-appropriate activities and qualified caregivers.",
		ETA:         "Spring 2024",
		Image:       "https://images.pexels.com/photos/8613082/pexels-photo-8613082.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features: []string{
			"Age-appropriate educational activities",
			"Qualified and experienced caregivers",
			"Safe and secure play environment",
			"Flexible scheduling options",
			"Nutritious snacks and meals",
			"Regular parent updates",
		},
		Benefits: []Benefit{
			{Title: "Social Development", Description: "Help children develop social skills through group play"},
			{Title: "Quality Care", Description: "Professional caregivers dedicated to child development"},
			{Title: "Fun Learning", Description: "Educational activities disguised as play time"},
		},
	},
	"Salon": {
		Description: "Full-service beauty salon offering hair styling, nail care, and skincare treatments in a relaxing atmosphere.",
		ETA:         "Summer 2024",
		Image:       "https://images.pexels.com/photos/3993449/pexels-photo-3993449.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features: []string{
			"Professional hair styling and cuts",
			"Manicure and pedicure services",
			"Facial and skincare treatments",
			"Color treatments and highlights",
			"Special occasion styling",
			"Relaxing spa atmosphere",
		},
		Benefits: []Benefit{
			{Title: "Expert Stylists", Description: "Trained professionals with years of experience"},
			{Title: "Premium Products", Description: "High-quality, professional-grade beauty products"},
			{Title: "Personal Service", Description: "Customized treatments for your unique needs"},
		},
	},
	"Laundromart": {
		Description: "Convenient laundry and dry cleaning services with express options and eco-friendly practices.",
		ETA:         "Fall 2024",
		Image:       "https://images.pexels.com/photos/4700391/pexels-photo-4700391.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features: []string{
			"Wash and fold services",
			"Professional dry cleaning",
			"Express same-day service",
			"Eco-friendly cleaning products",
			"Pickup and delivery options",
			"Stain removal specialists",
		},
		Benefits: []Benefit{
			{Title: "Time Saving", Description: "Free up your time for more important things"},
			{Title: "Professional Care", Description: "Expert handling of all fabric types"},
			{Title: "Convenient", Description: "Flexible pickup and delivery scheduling"},
		},
	},
	"Supermart": {
		Description: "Fresh groceries and daily essentials with local products, online ordering, and home delivery.",
		ETA:         "Winter 2024",
		Image:       "https://images.pexels.com/photos/264547/pexels-photo-264547.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features: []string{
			"Fresh produce and organic options",
			"Local and artisanal products",
			"Online ordering system",
			"Same-day delivery service",
			"Weekly meal planning assistance",
			"Bulk buying options",
		},
		Benefits: []Benefit{
			{Title: "Fresh Quality", Description: "Daily fresh produce and quality guarantee"},
			{Title: "Local Support", Description: "Supporting local farmers and producers"},
			{Title: "Convenient", Description: "Online ordering with flexible delivery"},
		},
	},
}

// ServiceInfoFor returns the coming-soon content for the named service. The
// error is a *NotFoundError when no entry matches; callers must not render
// an empty page in that case.
func ServiceInfoFor(name string) (ServiceInfo, error) {
	info, ok := serviceInfo[name]
	if !ok {
		return ServiceInfo{}, &NotFoundError{Name: name}
	}
	return info, nil
}
