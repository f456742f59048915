package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArticleContent is the structured body of an article. It is persisted as a
// single JSON document.
type ArticleContent struct {
	MainContent    string         `json:"main_content,omitempty"`
	SidebarContent string         `json:"sidebar_content,omitempty"`
	FooterContent  string         `json:"footer_content,omitempty"`
	Summary        string         `json:"summary,omitempty"`
	Tags           []string       `json:"tags"`
	Metadata       map[string]any `json:"metadata"`
}

// NewArticleContent returns content with non-nil tags and metadata.
func NewArticleContent() ArticleContent {
	return ArticleContent{Tags: []string{}, Metadata: map[string]any{}}
}

// normalize replaces nil collections with empty ones.
func (c *ArticleContent) normalize() {
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}
}

// AddTag appends tag unless it is already present.
func (c *ArticleContent) AddTag(tag string) {
	c.normalize()
	if !slices.Contains(c.Tags, tag) {
		c.Tags = append(c.Tags, tag)
	}
}

// RemoveTag removes tag. Removing an absent tag is a no-op.
func (c *ArticleContent) RemoveTag(tag string) {
	c.normalize()
	c.Tags = slices.DeleteFunc(c.Tags, func(t string) bool { return t == tag })
}

func (c *ArticleContent) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// RemoveTagsWithPrefix drops every tag starting with prefix.
func (c *ArticleContent) RemoveTagsWithPrefix(prefix string) {
	c.normalize()
	c.Tags = slices.DeleteFunc(c.Tags, func(t string) bool { return strings.HasPrefix(t, prefix) })
}

func (c *ArticleContent) SetMetadata(key string, value any) {
	c.normalize()
	c.Metadata[key] = value
}

// MetadataValue returns the metadata value stored under key.
func (c *ArticleContent) MetadataValue(key string) (any, bool) {
	v, ok := c.Metadata[key]
	return v, ok
}

// WordCount sums whitespace-separated tokens across the four text sections.
func (c *ArticleContent) WordCount() int {
	n := 0
	for _, s := range []string{c.MainContent, c.SidebarContent, c.FooterContent, c.Summary} {
		n += len(strings.Fields(s))
	}
	return n
}

// IsEmpty reports whether all text sections are blank.
func (c *ArticleContent) IsEmpty() bool {
	for _, s := range []string{c.MainContent, c.SidebarContent, c.FooterContent, c.Summary} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// Article is the base content unit. Persons and settlements wrap one.
type Article struct {
	ID            uuid.UUID
	Title         string
	Content       ArticleContent
	Type          ArticleType
	Visibility    Visibility
	AuthorID      *uuid.UUID
	ProjectID     uuid.UUID
	HeaderImageID *uuid.UUID
	SpotifyURL    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks required fields and enum membership.
func (a *Article) Validate() error {
	ve := &ValidationError{}
	if strings.TrimSpace(a.Title) == "" {
		ve.Add("title", "required")
	}
	if !a.Type.IsValid() {
		ve.Add("article_type", "invalid value")
	}
	if !a.Visibility.IsValid() {
		ve.Add("visibility", "invalid value")
	}
	if a.ProjectID == uuid.Nil {
		ve.Add("project_id", "required")
	}
	return ve.Err()
}

// VisibleTo reports whether the article may be shown to userID. A nil userID
// is an anonymous caller.
func (a *Article) VisibleTo(userID *uuid.UUID) bool {
	switch a.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityPrivate:
		return userID != nil
	case VisibilityUnlisted:
		return userID != nil && a.AuthorID != nil && *a.AuthorID == *userID
	}
	return false
}
