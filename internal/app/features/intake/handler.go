package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	intakestore "github.com/caprecon/backend/internal/app/store/intake"
	"github.com/caprecon/backend/internal/app/system/httpjson"
	"github.com/caprecon/backend/internal/app/system/timeouts"
	"github.com/caprecon/backend/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the public intake form endpoints. Each endpoint decodes a
// JSON body, validates it structurally, and performs a single insert.
type Handler struct {
	Store *intakestore.Store
	Log   *zap.Logger
}

func NewHandler(store *intakestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// createdResponse confirms a stored submission.
type createdResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message"`
}

// CreateDonation handles POST /api/donations.
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var in models.DonationIntent
	if !h.decode(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httpjson.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Store.CreateDonation(ctx, in)
	if err != nil {
		h.storeError(w, "donation insert failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, createdResponse{ID: rec.ID, Reference: rec.Reference, Message: "Donation intent recorded"})
}

// CreateVolunteer handles POST /api/volunteers.
func (h *Handler) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var in models.VolunteerApplication
	if !h.decode(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httpjson.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Store.CreateVolunteer(ctx, in)
	if err != nil {
		h.storeError(w, "volunteer insert failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, createdResponse{ID: rec.ID, Reference: rec.Reference, Message: "Volunteer application received"})
}

// CreatePartner handles POST /api/partners.
func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var in models.PartnerInquiry
	if !h.decode(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httpjson.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Store.CreatePartner(ctx, in)
	if err != nil {
		h.storeError(w, "partner insert failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, createdResponse{ID: rec.ID, Reference: rec.Reference, Message: "Partner inquiry submitted"})
}

// CreateContact handles POST /api/contact.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessage
	if !h.decode(w, r, &in) {
		return
	}
	if verr := in.Validate(); verr != nil {
		httpjson.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Store.CreateContact(ctx, in)
	if err != nil {
		h.storeError(w, "contact insert failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, createdResponse{ID: rec.ID, Reference: rec.Reference, Message: "Message received"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "body must be valid JSON")
		return false
	}
	return true
}

func (h *Handler) storeError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, intakestore.ErrUnavailable) {
		httpjson.Error(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	h.Log.Error(msg, zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, httpjson.Truncate(err.Error(), 200))
}
