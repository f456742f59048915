package domain

import "github.com/google/uuid"

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page is offset pagination as exposed by list endpoints (skip/limit).
type Page struct {
	Skip  int
	Limit int
}

// Normalize applies defaults and clamps values.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Viewer identifies who is reading. A nil UserID is an anonymous caller.
type Viewer struct {
	UserID *uuid.UUID
}

// ProjectFilter narrows project listings. Zero fields are ignored.
type ProjectFilter struct {
	Name    string
	OwnerID *uuid.UUID
}

// ArticleFilter narrows article listings. Nil or empty fields are ignored.
type ArticleFilter struct {
	ProjectID  *uuid.UUID
	AuthorID   *uuid.UUID
	Type       *ArticleType
	Visibility *Visibility
	Title      string
	// Viewer applies the visibility policy. Nil returns every matching row.
	Viewer *Viewer
}

// PersonFilter narrows person listings. Text filters match case-insensitive
// substrings.
type PersonFilter struct {
	ProjectID  *uuid.UUID
	Race       string
	Location   string
	Occupation string
	LifeStatus *LifeStatus
	Viewer     *Viewer
}

// SettlementFilter narrows settlement listings. Population bounds are
// inclusive; settlements without a known population never match a bound.
type SettlementFilter struct {
	ProjectID      *uuid.UUID
	Type           *SettlementType
	Region         string
	MinPopulation  *int
	MaxPopulation  *int
	GovernmentType *GovernmentType
	Viewer         *Viewer
}
