package schema

// ImageTable represents the 'image' table
type ImageTable struct {
	Table     string
	ID        string
	Front     string
	Side      string
	CreatedAt string
}

// Image is the schema definition for image
var Image = ImageTable{
	Table:     "image",
	ID:        "image_id",
	Front:     "image_front",
	Side:      "image_side",
	CreatedAt: "created_at",
}

func (t ImageTable) Columns() []string {
	return []string{t.ID, t.Front, t.Side, t.CreatedAt}
}
