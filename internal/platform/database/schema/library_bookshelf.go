package schema

// BookshelfTable represents the 'bookshelf' table
type BookshelfTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	View      string
	CreatedAt string
}

// Bookshelf is the schema definition for bookshelf
var Bookshelf = BookshelfTable{
	Table:     "bookshelf",
	ID:        "bookshelf_id",
	UserID:    "user_id",
	Name:      "name",
	View:      "view",
	CreatedAt: "created_at",
}

func (t BookshelfTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.View, t.CreatedAt}
}
