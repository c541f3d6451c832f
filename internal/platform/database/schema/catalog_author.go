package schema

// AuthorTable represents the 'author' table
type AuthorTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
}

// Author is the schema definition for author
var Author = AuthorTable{
	Table:     "author",
	ID:        "author_id",
	FirstName: "first_name",
	LastName:  "last_name",
}

func (t AuthorTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName}
}
