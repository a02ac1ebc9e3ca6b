package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/storage"
)

// memUsers is an in-memory UserStorage.
type memUsers struct {
	byName map[string]*models.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{byName: make(map[string]*models.User)}
}

func (m *memUsers) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.byName[user.Username]; ok {
		return storage.ErrConflict
	}
	m.nextID++
	user.ID = m.nextID
	m.byName[user.Username] = user
	return nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.byName[username]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", username, storage.ErrNotFound)
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.byName {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, storage.ErrNotFound)
}

func newTestAuthenticator() *PasswordAuthenticator {
	a := NewPasswordAuthenticator(newMemUsers())
	a.cost = bcrypt.MinCost
	return a
}

func TestRegister(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	user, err := a.Register(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 || user.PasswordHash == "password123" {
		t.Errorf("Register returned %+v", user)
	}

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"short username", "al", "al@example.com", "password123", ErrInvalidUsername},
		{"long username", strings.Repeat("a", 33), "x@example.com", "password123", ErrInvalidUsername},
		{"email without at", "bob", "bob.example.com", "password123", ErrInvalidEmail},
		{"long email", "bob", strings.Repeat("b", 60) + "@example.com", "password123", ErrInvalidEmail},
		{"weak password", "bob", "bob@example.com", "short", ErrWeakPassword},
		{"duplicate username", "alice", "other@example.com", "password123", ErrUserExists},
		{"duplicate email", "alice2", "alice@example.com", "password123", ErrUserExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	if _, err := a.Register(ctx, "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := a.Authenticate(ctx, "alice", "password123"); err != nil {
		t.Errorf("Authenticate failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "alice", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Authenticate(ctx, "nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: 42, Username: "alice"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Subject != "42" {
		t.Errorf("claims = %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		tok, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42})
		s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		if _, err := m.Validate(s); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})
}
