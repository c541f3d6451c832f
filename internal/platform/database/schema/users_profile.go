package schema

// ProfileTable represents the 'profile' table
type ProfileTable struct {
	Table   string
	ID      string
	Bio     string
	Picture string
}

// Profile is the schema definition for profile
var Profile = ProfileTable{
	Table:   "profile",
	ID:      "profile_id",
	Bio:     "bio",
	Picture: "picture",
}

func (t ProfileTable) Columns() []string {
	return []string{t.ID, t.Bio, t.Picture}
}
