package schema

// UserTable represents the 'user' table
type UserTable struct {
	Table       string
	ID          string
	FirstName   string
	LastName    string
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	ProfileID   string
	ReadingGoal string
}

// User is the schema definition for user
var User = UserTable{
	Table:       `"user"`,
	ID:          "user_id",
	FirstName:   "first_name",
	LastName:    "last_name",
	Username:    "username",
	Email:       "email",
	Password:    "password",
	PhoneNumber: "phone_number",
	Address:     "address",
	ProfileID:   "profile_id",
	ReadingGoal: "reading_goal",
}

func (t UserTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Username, t.Email, t.Password, t.PhoneNumber, t.Address, t.ProfileID, t.ReadingGoal}
}
