package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

type Contact struct {
	contacts model.ContactStore
	logger   *logger.Logger
}

func NewContact(contacts model.ContactStore, logger *logger.Logger) *Contact {
	return &Contact{contacts: contacts, logger: logger}
}

func (s *Contact) Create(ctx context.Context, userID uuid.UUID, params model.ContactParams) (model.Contact, error) {
	if err := validateContact(params); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.contacts.Create(ctx, model.Contact{
		UserID: userID,
		Name:   params.Name,
		Email:  params.Email,
		Phone:  params.Phone,
		Notes:  params.Notes,
	})
	if err != nil {
		s.logger.Error("Contact service: failed to create contact",
			"user_id", userID,
			"error", err.Error())
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (s *Contact) List(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	contacts, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Update overwrites a contact owned by userID. Contacts belonging to other
// users are reported as model.ErrNotFound.
func (s *Contact) Update(ctx context.Context, userID, id uuid.UUID, params model.ContactParams) (model.Contact, error) {
	if err := validateContact(params); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.contacts.Update(ctx, model.Contact{
		ID:     id,
		UserID: userID,
		Name:   params.Name,
		Email:  params.Email,
		Phone:  params.Phone,
		Notes:  params.Notes,
	})
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (s *Contact) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.contacts.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.logger.Info("Contact service: contact deleted",
		"user_id", userID,
		"contact_id", id)

	return nil
}

func validateContact(p model.ContactParams) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" || strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: name, email and phone are required", model.ErrValidation)
	}
	return nil
}
