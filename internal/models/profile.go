// Package models defines the data types held by the portfolio store:
// the owner profile and uploaded binary artifacts.
package models

// Profile holds the owner-facing text fields shown on the about view.
// All fields are always present; defaults apply at first load.
type Profile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`

	// PhotoURL references a static asset and is not editable through
	// ProfileUpdate.
	PhotoURL string `json:"photoUrl"`
}

// DefaultProfile returns the hard-coded profile used when storage holds none.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Raghul R",
		Role:     "Security Engineer",
		Bio:      "Passionate Security Engineer specializing in Identity and Access Management, Security Operations Centre, and Vulnerability Management. Dedicated to protecting digital assets and ensuring robust cybersecurity frameworks.",
		Email:    "raghul@example.com",
		Linkedin: "https://www.linkedin.com/in/raghul",
		Github:   "https://github.com/raghul07102002",
		PhotoURL: "/assets/raghul-profile.jpg",
	}
}

// ProfileUpdate carries a partial set of profile fields. Nil fields are left
// unchanged by Apply; free-form values are accepted as-is, no validation.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`
}

// Apply merges the non-nil fields of u into p (shallow merge).
func (p *Profile) Apply(u ProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Linkedin != nil {
		p.Linkedin = *u.Linkedin
	}
	if u.Github != nil {
		p.Github = *u.Github
	}
}
