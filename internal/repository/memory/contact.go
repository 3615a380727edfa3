package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

type ContactRepository struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]model.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{contacts: make(map[uuid.UUID]model.Contact)}
}

func (r *ContactRepository) Create(_ context.Context, contact model.Contact) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	contact.ID = uuid.New()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	r.contacts[contact.ID] = contact
	return contact, nil
}

func (r *ContactRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Contact{}
	for _, c := range r.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ContactRepository) Update(_ context.Context, contact model.Contact) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.contacts[contact.ID]
	if !ok || existing.UserID != contact.UserID {
		return model.Contact{}, model.ErrNotFound
	}

	existing.Name = contact.Name
	existing.Email = contact.Email
	existing.Phone = contact.Phone
	existing.Notes = contact.Notes
	existing.UpdatedAt = time.Now()
	r.contacts[existing.ID] = existing
	return existing, nil
}

func (r *ContactRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.contacts[id]
	if !ok || existing.UserID != userID {
		return model.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
