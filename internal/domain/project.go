package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project groups articles and images of one fictional world.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "required")
	}
	return nil
}
