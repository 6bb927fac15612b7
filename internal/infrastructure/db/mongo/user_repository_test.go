package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

func duplicateOn(index string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: coaching.users index: " + index + " dup key",
	}}}
}

func TestDuplicateUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"username index", duplicateOn(usernameIndex), domain.ErrUsernameTaken},
		{"email index", duplicateOn(emailIndex), domain.ErrEmailInUse},
		{"unknown shape", errors.New("E11000"), domain.ErrEmailInUse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateUserError(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDuplicateDetection(t *testing.T) {
	if !mongo.IsDuplicateKeyError(duplicateOn(emailIndex)) {
		t.Fatalf("expected write exception to be a duplicate key error")
	}
}

func TestMongoUser_ToDomain(t *testing.T) {
	mu := mongoUser{Username: "kim", Email: "kim@example.com", Role: "COACH", CreatedAt: 1700000000}

	u, err := mu.toDomain()
	if err != nil {
		t.Fatalf("toDomain failed: %v", err)
	}
	if u.Role != domain.RoleCoach {
		t.Fatalf("expected COACH, got %s", u.Role)
	}
	if !u.CreatedAt.Equal(time.Unix(1700000000, 0)) || !u.UpdatedAt.IsZero() {
		t.Fatalf("unexpected timestamps: %v / %v", u.CreatedAt, u.UpdatedAt)
	}

	mu.Role = "SUPERUSER"
	if _, err := mu.toDomain(); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}
