package domain

// Category groups habits in the tracker UI. Managed through the protected
// CRUD surface; this service only owns the records themselves.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
