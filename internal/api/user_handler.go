package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kestrelhq/roster-api/internal/api/shared"
	"github.com/kestrelhq/roster-api/internal/domain"
	"github.com/kestrelhq/roster-api/internal/store"
)

// errMissingUpdateField marks an update body that decoded without one of
// its fields. Logged server-side; the client sees a generic internal error.
var errMissingUpdateField = errors.New("update body missing username or email")

// UserHandler handles the user CRUD API requests.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
	}
}

// Create handles POST /users.
// Requires a parseable body with non-empty username and email; responds 201
// with the created record including its generated ID.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and email are required")
		return
	}

	user, err := domain.NewUser(req.Username, req.Email)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// List handles GET /users. Always responds 200 with a JSON array; an empty
// table yields [] rather than null.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Update handles PUT /users/{id}.
// The body is decoded but not shape-validated before delegation; a body
// that cannot be decoded, or that omits either field, surfaces as an
// internal error rather than a 400.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	// A partial body is not a validation failure here; passed through, the
	// nil would hit a NOT NULL constraint, so fail the same way without
	// the round-trip.
	if req.Username == nil || req.Email == nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal server error",
			errMissingUpdateField)
		return
	}

	user, err := h.userStore.Update(r.Context(), id, *req.Username, *req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}. Success is 204 with an empty body.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
