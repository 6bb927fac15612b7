package service

import (
	"context"
	"errors"
	"testing"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

func TestCatalogService_CreateAndList(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo)

	created, err := svc.Create(context.Background(), ports.ServiceInput{
		Title:    "Aim bootcamp",
		Price:    120,
		Type:     domain.ServiceMonthly,
		Features: []string{"4 sessions", "replay notes"},
		Popular:  true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || !created.Active {
		t.Fatalf("expected active service with id, got %+v", created)
	}

	popular, err := svc.List(context.Background(), ports.ServiceFilter{PopularOnly: true})
	if err != nil || len(popular) != 1 {
		t.Fatalf("popular listing: %v (%d)", err, len(popular))
	}

	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	active, _ := svc.List(context.Background(), ports.ServiceFilter{})
	if len(active) != 0 {
		t.Fatalf("deactivated service still listed")
	}
	if got, err := svc.Get(context.Background(), created.ID); err != nil || got.Active {
		t.Fatalf("deactivated service should remain readable and inactive: %v", err)
	}
}

func TestCatalogService_Validation(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo())

	tests := []struct {
		name string
		in   ports.ServiceInput
	}{
		{"missing title", ports.ServiceInput{Price: 1, Type: domain.ServiceTeam}},
		{"negative price", ports.ServiceInput{Title: "x", Price: -1, Type: domain.ServiceTeam}},
		{"unknown type", ports.ServiceInput{Title: "x", Type: "RAID"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if _, err := svc.List(context.Background(), ports.ServiceFilter{Type: "RAID"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for filter, got %v", err)
	}
}

func TestCatalogService_UpdateUnknown(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo())

	_, err := svc.Update(context.Background(), "missing", ports.ServiceInput{Title: "x", Type: domain.ServiceGuide})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
