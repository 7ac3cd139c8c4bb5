package catalog

// NavigationItem drives menu rendering and the coming-soon route set.
type NavigationItem struct {
	Name       string `json:"name"`
	Href       string `json:"href"`
	ComingSoon bool   `json:"comingSoon,omitempty"`
}

var navigationItems = []NavigationItem{
	{Name: "Home", Href: "/"},
	{Name: "Wellness & Consultancy", Href: "/wellness"},
	{Name: "Nursery", Href: "/nursery", ComingSoon: true},
	{Name: "Salon", Href: "/salon", ComingSoon: true},
	{Name: "Laundromart", Href: "/laundromart", ComingSoon: true},
	{Name: "Supermart", Href: "/supermart", ComingSoon: true},
}

// NavigationItems returns the ordered navigation entries.
func NavigationItems() []NavigationItem {
	out := make([]NavigationItem, len(navigationItems))
	copy(out, navigationItems)
	return out
}
