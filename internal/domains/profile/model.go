package profile

import "time"

// Profile is the personal information shown on the site.
// Exactly one document exists per process; updates shallow-merge
// onto it and never delete unspecified fields.
type Profile struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Social    Social    `json:"social"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Social struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// Default seeds the collection on first run, matching the fixture
// the site ships with before the admin edits anything.
func Default() Profile {
	return Profile{
		Name:     "Your Name",
		Title:    "Full-Stack Developer",
		Email:    "hello@portfolio.com",
		Bio:      "I build things for the web.",
		Location: "Remote",
	}
}
