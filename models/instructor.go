package models

import "github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/portabletext"

// Instructor is referenced by courses and blog articles (many-to-one).
type Instructor struct {
	ID              string               `json:"_id"`
	Name            string               `json:"name"`
	Specialization  string               `json:"specialization,omitempty"`
	Bio             []portabletext.Block `json:"bio,omitempty"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	ExperienceYears int                  `json:"experienceYears,omitempty"`
	StudentCount    int                  `json:"studentCount,omitempty"`
	CourseCount     int                  `json:"courseCount,omitempty"`
}
