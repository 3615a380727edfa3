package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dtroode/contactbook-server/internal/api/http/response"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

// ContactService defines contact operations scoped to the calling user.
type ContactService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.ContactParams) (model.Contact, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Contact, error)
	Update(ctx context.Context, userID, id uuid.UUID, params model.ContactParams) (model.Contact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (c contactRequest) params() model.ContactParams {
	return model.ContactParams{Name: c.Name, Email: c.Email, Phone: c.Phone, Notes: c.Notes}
}

// Contact handles HTTP endpoints for the authenticated user's contacts.
type Contact struct {
	contactService ContactService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewContact creates a new Contact handler.
func NewContact(contactService ContactService, contextManager model.ContextManager, logger *logger.Logger) *Contact {
	return &Contact{
		contactService: contactService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Contact) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req contactRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	contact, err := h.contactService.Create(r.Context(), userID, req.params())
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, contact)
}

func (h *Contact) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	contacts, err := h.contactService.List(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}

	response.JSON(w, http.StatusOK, contacts)
}

func (h *Contact) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req contactRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	contact, err := h.contactService.Update(r.Context(), userID, id, req.params())
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, contact)
}

func (h *Contact) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.contactService.Delete(r.Context(), userID, id); err != nil {
		handleError(w, err)
		return
	}

	response.Text(w, http.StatusOK, "Contact deleted")
}

func (h *Contact) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("Contact handler: user ID missing from context",
			"path", r.URL.Path)
		response.Text(w, http.StatusUnauthorized, "No token provided")
		return uuid.Nil, false
	}
	return userID, true
}

// contactID parses the {id} path segment. IDs that cannot name a contact are
// reported the same way as contacts that do not exist.
func contactID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, model.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
