package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type stubServiceRepo struct {
	items map[string]*domain.CoachingService
}

func newStubServiceRepo(items ...*domain.CoachingService) *stubServiceRepo {
	r := &stubServiceRepo{items: make(map[string]*domain.CoachingService)}
	for _, it := range items {
		clone := *it
		r.items[it.ID] = &clone
	}
	return r
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.CoachingService) error {
	clone := *s
	r.items[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.CoachingService) error {
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *s
	r.items[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.CoachingService, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context, f ports.ServiceFilter) ([]*domain.CoachingService, error) {
	var out []*domain.CoachingService
	for _, s := range r.items {
		if !s.Active && !f.IncludeInactive {
			continue
		}
		if f.Type != "" && s.Type != f.Type {
			continue
		}
		if f.PopularOnly && !s.Popular {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubBookingRepo struct {
	mu        sync.Mutex
	items     map[string]*domain.Booking
	createErr error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{items: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	clone := *b
	r.items[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *b
	r.items[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (r *stubBookingRepo) ListByCoach(_ context.Context, coachID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return coachID == "" || b.CoachID == coachID }), nil
}

func (r *stubBookingRepo) filter(keep func(*domain.Booking) bool) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.items {
		if keep(b) {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out
}

type stubGuard struct {
	held     map[string]bool
	err      error
	released int
}

func newStubGuard() *stubGuard {
	return &stubGuard{held: make(map[string]bool)}
}

func (g *stubGuard) key(userID, serviceID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%d", userID, serviceID, date.Unix())
}

func (g *stubGuard) Acquire(_ context.Context, userID, serviceID string, date time.Time) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	k := g.key(userID, serviceID, date)
	if g.held[k] {
		return false, nil
	}
	g.held[k] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, userID, serviceID string, date time.Time) error {
	g.released++
	delete(g.held, g.key(userID, serviceID, date))
	return nil
}
