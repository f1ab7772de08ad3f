package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwielgosz/SpendTracker/internal/user"
)

type mockUserService struct {
	users map[string]*user.User
}

func newMockUserService(users ...*user.User) *mockUserService {
	m := &mockUserService{users: map[string]*user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserService) Register(username, email, password string) (*user.User, error) {
	return nil, user.ErrInternalError
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByUsernameOrEmail(usernameOrEmail string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) ChangePasswordWithOldPassword(userID, oldPassword, newPassword string) error {
	return user.ErrInternalError
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:           "user-1",
		Username:     "johndoe",
		Email:        "john@example.com",
		PasswordHash: string(hash),
		HashToken:    "initial-hash-token",
	}
}

func newTestService(t *testing.T, users ...*user.User) Service {
	t.Helper()
	return NewAuthService(newMockUserService(users...), &JWTManager{secret: "test-secret"}, NewSessionStore())
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	token, err := manager.GenerateAccessJWT("user-1", time.Minute)
	assert.NoError(t, err)

	userID, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTManager_ExpiredAccessToken(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	token, err := manager.GenerateAccessJWT("user-1", -time.Minute)
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestJWTManager_RefreshTokenBoundToHashToken(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	token, err := manager.GenerateRefreshJWT("user-1", "hash-token-a", time.Hour)
	assert.NoError(t, err)

	assert.NoError(t, manager.ValidateRefreshToken(token, "hash-token-a"))
	assert.ErrorIs(t, manager.ValidateRefreshToken(token, "hash-token-b"), ErrInvalidJWTToken)
}

func TestJWTManager_RefreshTokenUniquePerIssue(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	// Same user, same hash token, back to back within the same second: the
	// two tokens must still differ or rotation would be a no-op.
	first, err := manager.GenerateRefreshJWT("user-1", "hash-token-a", time.Hour)
	assert.NoError(t, err)
	second, err := manager.GenerateRefreshJWT("user-1", "hash-token-a", time.Hour)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, manager.ValidateRefreshToken(first, "hash-token-a"))
	assert.NoError(t, manager.ValidateRefreshToken(second, "hash-token-a"))
}

func TestSessionStore_RevokeInvalidatesToken(t *testing.T) {
	store := NewSessionStore()
	store.Register("token-1", "user-1", time.Hour)

	userID, err := store.Verify("token-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	store.Revoke("token-1")
	_, err = store.Verify("token-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogin_Success(t *testing.T) {
	service := newTestService(t, testUser(t))

	loggedIn, accessToken, refreshToken, err := service.Login("johndoe", "secret-password")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", loggedIn.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
}

func TestLogin_UnknownUserAndWrongPasswordFailIdentically(t *testing.T) {
	service := newTestService(t, testUser(t))

	_, _, _, errUnknown := service.Login("nobody", "secret-password")
	_, _, _, errWrongPassword := service.Login("johndoe", "wrong-password")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
}

func TestLogout_RevokesRefreshSession(t *testing.T) {
	sessions := NewSessionStore()
	service := NewAuthService(newMockUserService(testUser(t)), &JWTManager{secret: "test-secret"}, sessions)

	_, _, refreshToken, err := service.Login("johndoe", "secret-password")
	assert.NoError(t, err)

	_, err = sessions.Verify(refreshToken)
	assert.NoError(t, err)

	service.Logout(refreshToken)
	_, err = sessions.Verify(refreshToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefreshAccessToken_RotatesRefreshToken(t *testing.T) {
	sessions := NewSessionStore()
	service := NewAuthService(newMockUserService(testUser(t)), &JWTManager{secret: "test-secret"}, sessions)

	_, _, refreshToken, err := service.Login("johndoe", "secret-password")
	assert.NoError(t, err)

	accessToken, newRefreshToken, err := service.RefreshAccessToken("user-1", refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEqual(t, refreshToken, newRefreshToken)

	_, err = sessions.Verify(refreshToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = sessions.Verify(newRefreshToken)
	assert.NoError(t, err)
}

func TestRefreshAccessTokenHandler_UnknownUserIsUnauthorized(t *testing.T) {
	// No users registered, so the refresh lookup fails as an authentication
	// problem, not a server error.
	handler := NewHandler(newTestService(t))

	req := httptest.NewRequest(http.MethodPut, "/auth/refresh", nil)
	req = req.WithContext(context.WithValue(req.Context(), "userID", "user-gone"))
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-token"})
	w := httptest.NewRecorder()
	handler.RefreshAccessToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestJWTAccessTokenMiddleware(t *testing.T) {
	service := newTestService(t, testUser(t))
	manager := &JWTManager{secret: "test-secret"}

	var seenUserID string
	protected := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	}))

	token, err := manager.GenerateAccessJWT("user-1", time.Minute)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "user-1", seenUserID)
}

func TestJWTAccessTokenMiddleware_MissingHeader(t *testing.T) {
	service := newTestService(t, testUser(t))

	protected := service.JWTAccessTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestJWTRefreshTokenMiddleware_RevokedToken(t *testing.T) {
	sessions := NewSessionStore()
	service := NewAuthService(newMockUserService(testUser(t)), &JWTManager{secret: "test-secret"}, sessions)

	_, _, refreshToken, err := service.Login("johndoe", "secret-password")
	assert.NoError(t, err)
	service.Logout(refreshToken)

	protected := service.JWTRefreshTokenMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodPut, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
