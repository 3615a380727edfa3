package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/contactbook-server/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

const contactColumns = `id, user_id, name, email, phone, notes, created_at, updated_at`

type ContactRepository struct {
	db dbtx
}

func NewContactRepository(db dbtx) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	query := `INSERT INTO contacts (user_id, name, email, phone, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query,
		contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Notes,
	))
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return saved, nil
}

func (r *ContactRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + `
			  FROM contacts WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact model.Contact) (model.Contact, error) {
	query := `UPDATE contacts
			  SET name = $3, email = $4, phone = $5, notes = $6, updated_at = now()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query,
		contact.ID, contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return saved, nil
}

func (r *ContactRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanContact(row pgx.Row) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
