package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"asteria/internal/models"
	"asteria/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and session token lifecycle.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration // Duration for which a session token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Register creates a new user with a bcrypt password hash and immediately
// issues a session token for them (auto-login). Either a username or an
// email collision blocks registration with ErrDuplicateIdentity.
func (s *AuthService) Register(username, email, password string) (*models.User, string, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, "", fmt.Errorf("username %q already taken: %w", username, ErrDuplicateIdentity)
	}
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, "", fmt.Errorf("email %q already registered: %w", email, ErrDuplicateIdentity)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		// A unique-constraint violation from a concurrent registration is
		// reported the same way as a pre-checked duplicate; anything else
		// is a real store failure and stays one.
		if existing, lookupErr := s.userRepo.GetByUsername(username); lookupErr == nil && existing != nil {
			return nil, "", fmt.Errorf("username %q already taken: %w", username, ErrDuplicateIdentity)
		}
		if existing, lookupErr := s.userRepo.GetByEmail(email); lookupErr == nil && existing != nil {
			return nil, "", fmt.Errorf("email %q already registered: %w", email, ErrDuplicateIdentity)
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user by username and returns a session token.
// Failures are uniform: an unknown username and a wrong password both come
// back as ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// issueToken signs a session token carrying the user's identity claims.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ActorFromToken resolves the acting identity from a session token. An
// empty or invalid token resolves to Anonymous rather than an error: absence
// of a session is a normal state, not a failure. The token only carries the
// user id; the identity itself is loaded from the store on every call, so a
// deleted user's outstanding token resolves to Anonymous and an admin-flag
// change takes effect without reissuing the token.
func (s *AuthService) ActorFromToken(tokenString string) Actor {
	if tokenString == "" {
		return Anonymous
	}
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		log.Printf("Discarding invalid session token: %v", err)
		return Anonymous
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id == 0 {
		return Anonymous
	}

	user, err := s.userRepo.GetByID(uint(id))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Failed to load user for session token: %v", err)
		}
		return Anonymous
	}

	return Actor{
		ID:            user.ID,
		Username:      user.Username,
		IsAdmin:       user.IsAdmin,
		Authenticated: true,
	}
}
