package user

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	userExistsByUsernameOrEmail(username, email string) (*User, error)
	getUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	getUserByID(id string) (*User, error)
	updateUserPasswordAndHashToken(userID, newPasswordHash, newHashToken string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, hash_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(query, user.ID, user.Username, user.Email, user.PasswordHash, user.HashToken).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) userExistsByUsernameOrEmail(username, email string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, hash_token, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = $2
	`

	var user User
	err := r.db.QueryRow(query, username, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.HashToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (r *userRepository) getUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, hash_token, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = $1
	`

	var user User
	err := r.db.QueryRow(query, usernameOrEmail).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.HashToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, hash_token, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.HashToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (r *userRepository) updateUserPasswordAndHashToken(userID, newPasswordHash, newHashToken string) error {
	query := `
		UPDATE users
		SET password_hash = $1,
		    hash_token = $2,
		    updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(query, newPasswordHash, newHashToken, time.Now(), userID)
	return err
}
