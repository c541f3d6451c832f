package schema

// ReviewTable represents the 'review' table
type ReviewTable struct {
	Table       string
	ID          string
	BookID      string
	Rating      string
	Description string
	CreatedAt   string
}

// Review is the schema definition for review
var Review = ReviewTable{
	Table:       "review",
	ID:          "review_id",
	BookID:      "book_id",
	Rating:      "rating",
	Description: "description",
	CreatedAt:   "created_at",
}

func (t ReviewTable) Columns() []string {
	return []string{t.ID, t.BookID, t.Rating, t.Description, t.CreatedAt}
}
