package catalog

// Icon is a symbolic identifier from a small closed set. The rendering layer
// resolves it to a concrete asset; the catalog never needs to know what an
// icon looks like.
type Icon string

const (
	IconHeart    Icon = "heart"
	IconUsers    Icon = "users"
	IconSparkles Icon = "sparkles"
	IconCalendar Icon = "calendar"
	IconStar     Icon = "star"
	IconClock    Icon = "clock"
)

// HomeFeature is a selling point on the home page.
type HomeFeature struct {
	Icon        Icon   `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var homeFeatures = []HomeFeature{
	{
		Icon:        IconHeart,
		Title:       "Personalized Care",
		Description: "Tailored wellness plans designed specifically for your unique needs and goals.",
	},
	{
		Icon:        IconUsers,
		Title:       "Expert Consultants",
		Description: "Work with certified professionals who are passionate about your wellbeing.",
	},
	{
		Icon:        IconSparkles,
		Title:       "Holistic Approach",
		Description: "Addressing mind, body, and spirit for comprehensive wellness transformation.",
	},
	{
		Icon:        IconCalendar,
		Title:       "Flexible Scheduling",
		Description: "In-person or virtual sessions that fit seamlessly into your busy lifestyle.",
	},
}

// HomeFeatures returns the ordered home-page feature list.
func HomeFeatures() []HomeFeature {
	out := make([]HomeFeature, len(homeFeatures))
	copy(out, homeFeatures)
	return out
}
