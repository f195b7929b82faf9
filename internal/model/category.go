package model

// Category groups inventory items.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
