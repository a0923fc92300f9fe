package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"fitstudio/internal/domain"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrEmptyCredentials  = errors.New("username and password cannot be empty")
	ErrUserAlreadyExists = errors.New("user with this username already exists")
	ErrInvalidRole       = errors.New("role must be trainer or client")
	ErrHashingFailed     = errors.New("failed to hash password")
	ErrNotAuthenticated  = errors.New("no user is logged in")
)

const saltBytes = 16

// DefaultHashIterations is the PBKDF2 iteration count used when the
// configuration does not set one.
const DefaultHashIterations = 10000

// --- Service Interface ---
type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context)
	CurrentUser() *domain.User
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	state      *state.Container
	iterations int
}

// NewAuthService creates a new instance of authService.
func NewAuthService(st *state.Container, iterations int) AuthService {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	return &authService{state: st, iterations: iterations}
}

// Register handles new user registration. The duplicate check and the append
// run inside one state transaction, so two near-simultaneous registrations of
// the same username cannot both pass the check.
func (s *authService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	// 1. Basic input validation
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	if role != domain.RoleTrainer && role != domain.RoleClient {
		return nil, ErrInvalidRole
	}

	var created domain.User
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		// 2. Username uniqueness (exact, case-sensitive match)
		for i := range tx.Users {
			if tx.Users[i].Username == username {
				return ErrUserAlreadyExists
			}
		}

		// 3. Hash the password
		cred, err := HashCredential(password, s.iterations)
		if err != nil {
			return err
		}

		// 4. Append the user with empty profile defaults
		now := time.Now().UTC()
		created = domain.User{
			ID:         uuid.New().String(),
			Username:   username,
			Credential: cred,
			Role:       role,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		tx.Users = append(tx.Users, created)
		tx.Mark(store.KeyUsers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Login checks the credentials and, on success, sets the authenticated
// pointer. No collection is mutated.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	user := s.state.UserByUsername(username)
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !VerifyCredential(password, user.Credential) {
		return nil, ErrWrongPassword
	}

	s.state.SetCurrentUser(user.ID)
	return user, nil
}

// Logout clears the authenticated pointer.
func (s *authService) Logout(ctx context.Context) {
	s.state.ClearCurrentUser()
}

// CurrentUser returns the authenticated user, or nil.
func (s *authService) CurrentUser() *domain.User {
	return s.state.CurrentUser()
}

// --- Credential helpers ---

// HashCredential derives a salted PBKDF2-SHA256 digest for storage at rest.
// The digest encodes to exactly 64 hex characters.
func HashCredential(password string, iterations int) (domain.Credential, error) {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return domain.Credential{}, ErrHashingFailed
	}

	digest := pbkdf2.Key([]byte(password), salt, iterations, sha256.Size, sha256.New)
	return domain.Credential{
		Salt:       hex.EncodeToString(salt),
		Digest:     hex.EncodeToString(digest),
		Iterations: iterations,
	}, nil
}

// VerifyCredential recomputes the digest with the stored salt and iteration
// count and compares in constant time.
func VerifyCredential(password string, cred domain.Credential) bool {
	salt, err := hex.DecodeString(cred.Salt)
	if err != nil {
		return false
	}
	iterations := cred.Iterations
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	digest := pbkdf2.Key([]byte(password), salt, iterations, sha256.Size, sha256.New)
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(digest)), []byte(cred.Digest)) == 1
}
