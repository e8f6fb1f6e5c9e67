package user

// User is a seeded demo account. Only the bcrypt hash of the password is kept.
type User struct {
	Email        string
	Name         string
	HashPassword string
}
