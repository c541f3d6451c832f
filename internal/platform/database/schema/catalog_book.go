package schema

// BookTable represents the 'book' table
type BookTable struct {
	Table         string
	ID            string
	Title         string
	ISBN          string
	PageCount     string
	Language      string
	DatePublished string
	Description   string
	AuthorID      string
	ImageID       string
}

// Book is the schema definition for book
var Book = BookTable{
	Table:         "book",
	ID:            "book_id",
	Title:         "title",
	ISBN:          "isbn",
	PageCount:     "page_count",
	Language:      "language",
	DatePublished: "date_published",
	Description:   "description",
	AuthorID:      "author_id",
	ImageID:       "image_id",
}

func (t BookTable) Columns() []string {
	return []string{t.ID, t.Title, t.ISBN, t.PageCount, t.Language, t.DatePublished, t.Description, t.AuthorID, t.ImageID}
}
