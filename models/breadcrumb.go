package models

// Breadcrumb is one (display name, path) pair of a breadcrumb trail.
// Trails always start at the site root.
type Breadcrumb struct {
	Name string
	Path string
}

// HomeTrail returns the start of every breadcrumb trail.
func HomeTrail() []Breadcrumb {
	return []Breadcrumb{{Name: "Ana Sayfa", Path: "/"}}
}
