package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
	"github.com/mythosengine/backend/internal/service/person"
)

type personService interface {
	Create(ctx context.Context, input person.CreatePersonInput) (*domain.Person, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	List(ctx context.Context, f domain.PersonFilter, page domain.Page) ([]domain.Person, error)
	Update(ctx context.Context, id uuid.UUID, input person.UpdatePersonInput) (*domain.Person, error)
	AddImportantDate(ctx context.Context, id uuid.UUID, date domain.ImportantDate) (*domain.Person, error)
	AddRelationship(ctx context.Context, id uuid.UUID, rel domain.Relationship) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonHandler serves /persons endpoints.
type PersonHandler struct {
	svc personService
	log *slog.Logger
}

// NewPersonHandler creates a PersonHandler.
func NewPersonHandler(svc personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: logger.With("handler", "person")}
}

// Routes mounts the person endpoints.
func (h *PersonHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/important-dates", h.AddImportantDate)
	r.Post("/{id}/relationships", h.AddRelationship)
}

type createPersonRequest struct {
	Name       string                 `json:"name"`
	ProjectID  uuid.UUID              `json:"project_id"`
	Visibility domain.Visibility      `json:"visibility"`
	Content    *domain.ArticleContent `json:"content"`
	PersonData domain.PersonData      `json:"person_data"`
}

type updatePersonRequest struct {
	Name       *string                `json:"name"`
	Visibility *domain.Visibility     `json:"visibility"`
	Content    *domain.ArticleContent `json:"content"`
	PersonData *domain.PersonData     `json:"person_data"`
}

// Create handles POST /persons/.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Create(r.Context(), person.CreatePersonInput{
		Name:       req.Name,
		ProjectID:  req.ProjectID,
		Visibility: req.Visibility,
		Content:    req.Content,
		Data:       req.PersonData,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPersonResponse(*p))
}

// List handles GET /persons/?project_id=&race=&location=&occupation=&alive=&life_status=.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := personFilterQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	persons, err := h.svc.List(r.Context(), f, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(persons, toPersonResponse))
}

func personFilterQuery(r *http.Request) (domain.PersonFilter, error) {
	q := r.URL.Query()
	f := domain.PersonFilter{
		Race:       q.Get("race"),
		Location:   q.Get("location"),
		Occupation: q.Get("occupation"),
	}

	var err error
	if f.ProjectID, err = uuidQuery(r, "project_id"); err != nil {
		return f, err
	}

	if raw := q.Get("life_status"); raw != "" {
		status := domain.LifeStatus(raw)
		if !status.IsValid() {
			return f, domain.NewValidationError("life_status", "invalid value")
		}
		f.LifeStatus = &status
	}
	// alive=true is shorthand for life_status=alive; alive=false selects the dead.
	if raw := q.Get("alive"); raw != "" {
		alive, err := strconv.ParseBool(raw)
		if err != nil {
			return f, domain.NewValidationError("alive", "must be a boolean")
		}
		status := domain.LifeStatusDead
		if alive {
			status = domain.LifeStatusAlive
		}
		f.LifeStatus = &status
	}
	return f, nil
}

// Get handles GET /persons/{id}.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(*p))
}

// Update handles PUT /persons/{id}.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updatePersonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, person.UpdatePersonInput{
		Name:       req.Name,
		Visibility: req.Visibility,
		Content:    req.Content,
		Data:       req.PersonData,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(*p))
}

// AddImportantDate handles POST /persons/{id}/important-dates.
func (h *PersonHandler) AddImportantDate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var date domain.ImportantDate
	if err := decodeJSON(w, r, &date); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.AddImportantDate(r.Context(), id, date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(*p))
}

// AddRelationship handles POST /persons/{id}/relationships.
func (h *PersonHandler) AddRelationship(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var rel domain.Relationship
	if err := decodeJSON(w, r, &rel); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.AddRelationship(r.Context(), id, rel)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPersonResponse(*p))
}

// Delete handles DELETE /persons/{id}. The backing article is removed too.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Person deleted successfully")
}
