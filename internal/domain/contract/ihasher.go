package contract

// IHasher hashes and verifies passwords with a salted one-way function.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
