package auth

const RoleAdmin = "ADMIN"

// Staff is a back-office account. Customers never authenticate.
type Staff struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}
