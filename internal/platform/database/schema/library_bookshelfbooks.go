package schema

// BookshelfBooksTable represents the 'bookshelf_books' table
type BookshelfBooksTable struct {
	Table       string
	BookshelfID string
	BookID      string
}

// BookshelfBooks is the schema definition for bookshelf_books
var BookshelfBooks = BookshelfBooksTable{
	Table:       "bookshelf_books",
	BookshelfID: "bookshelf_id",
	BookID:      "book_id",
}
