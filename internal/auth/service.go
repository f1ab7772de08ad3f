package auth

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwielgosz/SpendTracker/internal/user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Login(usernameOrEmail, password string) (*user.User, string, string, error)
	Logout(refreshToken string)
	RefreshAccessToken(userID, oldRefreshToken string) (string, string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
	JWTRefreshTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	sessions    SessionStoreInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, sessions SessionStoreInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		sessions:    sessions,
	}
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

// Login verifies credentials and issues an access token plus a refresh token.
// Unknown user and wrong password fail identically, nothing in the response
// reveals which credential was bad.
func (s *service) Login(usernameOrEmail, password string) (*user.User, string, string, error) {
	existingUser, err := s.userService.GetUserByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(existingUser.ID, existingUser.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}
	s.sessions.Register(refreshToken, existingUser.ID, defaultJWTRefreshDuration)

	return existingUser, accessToken, refreshToken, nil
}

func (s *service) Logout(refreshToken string) {
	s.sessions.Revoke(refreshToken)
}

// RefreshAccessToken issues a fresh access token and rotates the refresh
// token, revoking the old one.
func (s *service) RefreshAccessToken(userID, oldRefreshToken string) (string, string, error) {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", ErrInternalError
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return "", "", ErrInternalError
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshJWT(existingUser.ID, existingUser.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		return "", "", ErrInternalError
	}

	s.sessions.Revoke(oldRefreshToken)
	s.sessions.Register(newRefreshToken, existingUser.ID, defaultJWTRefreshDuration)

	return accessToken, newRefreshToken, nil
}
