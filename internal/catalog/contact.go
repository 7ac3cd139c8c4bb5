package catalog

// ContactInfo is the site-wide contact block.
type ContactInfo struct {
	Phone    string      `json:"phone"`
	PhoneRaw string      `json:"phoneRaw"`
	Email    string      `json:"email"`
	Address  Address     `json:"address"`
	Social   SocialLinks `json:"social"`
}

// Address is a street/city pair for display.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// SocialLinks holds the social profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// BrandInfo is the site branding block.
type BrandInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

var contactInfo = ContactInfo{
	Phone:    "+1 (234) 567-890",
	PhoneRaw: "+1234567890",
	Email:    "hello@wellnesshub.com",
	Address: Address{
		Street: "123 Wellness Street",
		City:   "Health City, HC 12345",
	},
	Social: SocialLinks{
		Facebook:  "#",
		Instagram: "#",
		Twitter:   "#",
	},
}

var brandInfo = BrandInfo{
	Name:        "WellnessHub",
	Tagline:     "Building healthier communities together",
	Description: "Your trusted partner in wellness and personal growth. Building a healthier, happier community one session at a time.",
}

// Contact returns the site contact info.
func Contact() ContactInfo {
	return contactInfo
}

// Brand returns the site branding.
func Brand() BrandInfo {
	return brandInfo
}
