package schema

// BookGenreTable represents the 'bookgenre' table
type BookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BookGenre is the schema definition for bookgenre
var BookGenre = BookGenreTable{
	Table:   "bookgenre",
	BookID:  "book_id",
	GenreID: "genre_id",
}
