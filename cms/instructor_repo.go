package cms

import (
	"context"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/models"
)

// Instructors are the one collection sorted ascending by name; they back the
// academy page rather than a detail route family.
const instructorsQuery = `*[_type == "instructor"] | order(name asc) {
  _id,
  name,
  bio,
  "imageUrl": image.asset->url,
  specialization,
  experienceYears,
  studentCount,
  courseCount
}`

type InstructorRepo struct {
	client *Client
}

func NewInstructorRepo(client *Client) *InstructorRepo {
	return &InstructorRepo{client}
}

// FindAll returns every instructor, sorted by name.
func (r *InstructorRepo) FindAll(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	err := r.client.Fetch(ctx, instructorsQuery, nil, &instructors)
	return instructors, err
}
