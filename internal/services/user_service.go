package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avross/shoplist-be/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const timeFormat = time.RFC3339Nano

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(name, email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides registration and credential checks. Password hashes
// never leave this package: every returned User has the hash cleared.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user, hashing their password. Registering an email
// that is already present fails with ErrDuplicateEmail and leaves the
// existing record untouched.
func (s *UserService) Register(name, email, password string) (models.User, error) {
	var existing string
	err := s.db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return models.User{}, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return models.User{}, fmt.Errorf("check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		"INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, string(hashedPassword), user.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a user's credentials.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.getByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	var createdAt string
	row := s.db.QueryRow("SELECT id, name, email, created_at FROM users WHERE id = ?", id)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	user.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return user, nil
}

func (s *UserService) getByEmail(email string) (models.User, error) {
	var user models.User
	var createdAt string
	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &createdAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return user, nil
}
