package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/domain"
)

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type userStatsResponse struct {
	userResponse
	ArticleCount int `json:"article_count"`
	ProjectCount int `json:"project_count"`
}

type projectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	OwnerID     *uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type articleResponse struct {
	ID            uuid.UUID             `json:"id"`
	Title         string                `json:"title"`
	Content       domain.ArticleContent `json:"content"`
	ArticleType   domain.ArticleType    `json:"article_type"`
	Visibility    domain.Visibility     `json:"visibility"`
	AuthorID      *uuid.UUID            `json:"author_id"`
	ProjectID     uuid.UUID             `json:"project_id"`
	HeaderImageID *uuid.UUID            `json:"header_image_id"`
	SpotifyURL    *string               `json:"spotify_url"`
	WordCount     int                   `json:"word_count"`
	IsEmpty       bool                  `json:"is_empty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func toArticleResponse(a domain.Article) articleResponse {
	return articleResponse{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		ArticleType:   a.Type,
		Visibility:    a.Visibility,
		AuthorID:      a.AuthorID,
		ProjectID:     a.ProjectID,
		HeaderImageID: a.HeaderImageID,
		SpotifyURL:    a.SpotifyURL,
		WordCount:     a.Content.WordCount(),
		IsEmpty:       a.Content.IsEmpty(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

type personResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Article        articleResponse   `json:"article"`
	PersonData     domain.PersonData `json:"person_data"`
	IsAlive        bool              `json:"is_alive"`
	AgeDescription string            `json:"age_description"`
}

func toPersonResponse(p domain.Person) personResponse {
	return personResponse{
		ID:             p.ID,
		Name:           p.Name(),
		Article:        toArticleResponse(p.Article),
		PersonData:     p.Data,
		IsAlive:        p.IsAlive(),
		AgeDescription: p.AgeDescription(),
	}
}

type settlementResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name"`
	Article            articleResponse           `json:"article"`
	SettlementData     domain.SettlementData     `json:"settlement_data"`
	PopulationCategory domain.PopulationCategory `json:"population_category"`
}

func toSettlementResponse(s domain.Settlement) settlementResponse {
	return settlementResponse{
		ID:                 s.ID,
		Name:               s.Name(),
		Article:            toArticleResponse(s.Article),
		SettlementData:     s.Data,
		PopulationCategory: s.PopulationCategory(),
	}
}

type imageResponse struct {
	ID               uuid.UUID `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	Width            *int      `json:"width"`
	Height           *int      `json:"height"`
	AltText          *string   `json:"alt_text"`
	IsRemote         bool      `json:"is_remote"`
	Bucket           *string   `json:"bucket"`
	ProjectID        uuid.UUID `json:"project_id"`
	URL              string    `json:"url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toImageResponse(img domain.Image, url string) imageResponse {
	return imageResponse{
		ID:               img.ID,
		Filename:         img.Filename,
		OriginalFilename: img.OriginalFilename,
		FilePath:         img.FilePath,
		FileSize:         img.FileSize,
		MimeType:         img.MimeType,
		Width:            img.Width,
		Height:           img.Height,
		AltText:          img.AltText,
		IsRemote:         img.IsRemote,
		Bucket:           img.Bucket,
		ProjectID:        img.ProjectID,
		URL:              url,
		CreatedAt:        img.CreatedAt,
		UpdatedAt:        img.UpdatedAt,
	}
}

type imageListResponse struct {
	Images     []imageResponse `json:"images"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type storageUsageResponse struct {
	ProjectID      uuid.UUID `json:"project_id"`
	TotalImages    int       `json:"total_images"`
	TotalSizeBytes int64     `json:"total_size_bytes"`
	TotalSizeMB    float64   `json:"total_size_mb"`
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
