package user

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 200
	minEmailLength    = 3
	maxUsernameLength = 120
	minUsernameLength = 3
	minPasswordLength = 8
	bcryptCost        = 12
)

var (
	ErrInvalidEmail          = errors.New("email address is not valid")
	ErrEmailLength           = fmt.Errorf("email address must be between %d and %d characters", minEmailLength, maxEmailLength)
	ErrUsernameLength        = fmt.Errorf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength)
	ErrPasswordTooShort      = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidOldPassword    = errors.New("invalid old password")
	ErrInternalError         = errors.New("internal server error")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	HashToken    string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(username, email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	ChangePasswordWithOldPassword(userID, oldPassword, newPassword string) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

// generateHashToken produces the per-user secret mixed into the JWT signing
// key. Rotating it invalidates every token issued for the user.
func generateHashToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("could not generate hash token: %v", err)
	}
	return hex.EncodeToString(token), nil
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrEmailLength
	}
	return nil
}

func (s *service) Register(username, email, password string) (*User, error) {
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	// missing username defaults to the email's local part
	if len(username) == 0 {
		parts := strings.Split(email, "@")
		if len(parts) < 2 {
			return nil, ErrInvalidEmail
		}
		username = parts[0]
	}
	if len(username) > maxUsernameLength || len(username) < minUsernameLength {
		return nil, ErrUsernameLength
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existingUser, err := s.repo.userExistsByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}
	if existingUser != nil {
		if existingUser.Email == email {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrUsernameAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}
	hashToken, err := generateHashToken()
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
	}
	if err := s.repo.createUser(user); err != nil {
		return nil, ErrInternalError
	}
	return user, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	return s.repo.getUserByUsernameOrEmail(usernameOrEmail)
}

// ChangePasswordWithOldPassword verifies the old password, then stores a new
// hash and rotates the hash token so existing tokens stop validating.
func (s *service) ChangePasswordWithOldPassword(userID, oldPassword, newPassword string) error {
	user, err := s.repo.getUserByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	newHash, err := hashPassword(newPassword)
	if err != nil {
		return ErrInternalError
	}
	newHashToken, err := generateHashToken()
	if err != nil {
		return ErrInternalError
	}
	return s.repo.updateUserPasswordAndHashToken(userID, newHash, newHashToken)
}
