package domain

import (
	"errors"
	"time"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

var (
	// ErrUnauthenticated covers a missing, malformed, expired or forged
	// credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden covers a valid credential with an insufficient role, or
	// an actor who does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput covers missing or malformed required fields.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID                 string    `json:"idUser"`
	Name               string    `json:"name"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Password           string    `json:"-"` // bcrypt hash, never serialized
	Role               string    `json:"role"`
	FavoriteCategories []string  `json:"favoriteCategories,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Principal is the authenticated identity decoded from a verified
// credential.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// CanWriteDestination is the single destination-write policy. The source
// system checked inconsistent role strings per handler; here both roles
// that ever passed those checks are allowed, everything else is not.
func CanWriteDestination(p Principal) bool {
	return p.Role == RoleUser || p.Role == RoleProvider
}
