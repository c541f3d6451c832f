package schema

// BooksByUserTable represents the 'booksbyuser' table
type BooksByUserTable struct {
	Table       string
	ID          string
	UserID      string
	BookID      string
	Status      string
	CurrentPage string
	StartDate   string
	EndDate     string
}

// BooksByUser is the schema definition for booksbyuser
var BooksByUser = BooksByUserTable{
	Table:       "booksbyuser",
	ID:          "id",
	UserID:      "user_id",
	BookID:      "book_id",
	Status:      "status",
	CurrentPage: "current_page",
	StartDate:   "start_date",
	EndDate:     "end_date",
}

func (t BooksByUserTable) Columns() []string {
	return []string{t.ID, t.UserID, t.BookID, t.Status, t.CurrentPage, t.StartDate, t.EndDate}
}
