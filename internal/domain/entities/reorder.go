package entities

// ReorderInput lists document IDs in their new display order
type ReorderInput struct {
	Items []string `json:"items" binding:"required"`
}
