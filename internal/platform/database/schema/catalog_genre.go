package schema

// GenreTable represents the 'genre' table
type GenreTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for genre
var Genre = GenreTable{
	Table: "genre",
	ID:    "genre_id",
	Name:  "name",
}
