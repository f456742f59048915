package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/settlement"
)

type settlementService interface {
	Create(ctx context.Context, input settlement.CreateSettlementInput) (*domain.Settlement, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Settlement, error)
	List(ctx context.Context, f domain.SettlementFilter, page domain.Page) ([]domain.Settlement, error)
	Update(ctx context.Context, id uuid.UUID, input settlement.UpdateSettlementInput) (*domain.Settlement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettlementHandler serves /settlements endpoints.
type SettlementHandler struct {
	svc settlementService
	log *slog.Logger
}

// NewSettlementHandler creates a SettlementHandler.
func NewSettlementHandler(svc settlementService, logger *slog.Logger) *SettlementHandler {
	return &SettlementHandler{svc: svc, log: logger.With("handler", "settlement")}
}

// Routes mounts the settlement endpoints.
func (h *SettlementHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type createSettlementRequest struct {
	Name           string                 `json:"name"`
	ProjectID      uuid.UUID              `json:"project_id"`
	Visibility     domain.Visibility      `json:"visibility"`
	Content        *domain.ArticleContent `json:"content"`
	SettlementData domain.SettlementData  `json:"settlement_data"`
}

type updateSettlementRequest struct {
	Name           *string                `json:"name"`
	Visibility     *domain.Visibility     `json:"visibility"`
	Content        *domain.ArticleContent `json:"content"`
	SettlementData *domain.SettlementData `json:"settlement_data"`
}

// Create handles POST /settlements/.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSettlementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	s, err := h.svc.Create(r.Context(), settlement.CreateSettlementInput{
		Name:       req.Name,
		ProjectID:  req.ProjectID,
		Visibility: req.Visibility,
		Content:    req.Content,
		Data:       req.SettlementData,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSettlementResponse(*s))
}

// List handles GET /settlements/?project_id=&type=&region=&min_population=&max_population=&government=.
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := settlementFilterQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	settlements, err := h.svc.List(r.Context(), f, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(settlements, toSettlementResponse))
}

func settlementFilterQuery(r *http.Request) (domain.SettlementFilter, error) {
	f := domain.SettlementFilter{Region: r.URL.Query().Get("region")}

	var err error
	if f.ProjectID, err = uuidQuery(r, "project_id"); err != nil {
		return f, err
	}
	if f.MinPopulation, err = intQuery(r, "min_population"); err != nil {
		return f, err
	}
	if f.MaxPopulation, err = intQuery(r, "max_population"); err != nil {
		return f, err
	}
	if raw := stringQuery(r, "type"); raw != nil {
		t := domain.SettlementType(*raw)
		f.Type = &t
	}
	if raw := stringQuery(r, "government"); raw != nil {
		g := domain.GovernmentType(*raw)
		f.GovernmentType = &g
	}
	return f, nil
}

// Get handles GET /settlements/{id}.
func (h *SettlementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettlementResponse(*s))
}

// Update handles PUT /settlements/{id}.
func (h *SettlementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateSettlementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	s, err := h.svc.Update(r.Context(), id, settlement.UpdateSettlementInput{
		Name:       req.Name,
		Visibility: req.Visibility,
		Content:    req.Content,
		Data:       req.SettlementData,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettlementResponse(*s))
}

// Delete handles DELETE /settlements/{id}.
func (h *SettlementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Settlement deleted successfully")
}
