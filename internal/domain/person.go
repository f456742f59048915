package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

const (
	PersonMetadataKey = "person_data"
	MaxPersonAge      = 10000

	defaultPersonSummary      = "A character in the world."
	defaultRelationshipStatus = "active"
)

// ImportantDate is one entry on a person's timeline. Date is free text
// ("Summer 1425").
type ImportantDate struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Relationship links a person to another character by name.
type Relationship struct {
	PersonName       string `json:"person_name"`
	RelationshipType string `json:"relationship_type"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status"`
}

// PersonData is the character-specific attribute bag.
type PersonData struct {
	Race       string     `json:"race,omitempty"`
	Gender     Gender     `json:"gender,omitempty"`
	Age        *int       `json:"age,omitempty"`
	LifeStatus LifeStatus `json:"life_status"`

	Height              string   `json:"height,omitempty"`
	Weight              string   `json:"weight,omitempty"`
	EyeColor            string   `json:"eye_color,omitempty"`
	HairColor           string   `json:"hair_color,omitempty"`
	DistinguishingMarks []string `json:"distinguishing_marks"`

	Birthplace      string `json:"birthplace,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`
	Occupation      string `json:"occupation,omitempty"`
	SocialClass     string `json:"social_class,omitempty"`

	BirthDate      string          `json:"birth_date,omitempty"`
	DeathDate      string          `json:"death_date,omitempty"`
	ImportantDates []ImportantDate `json:"important_dates"`

	Relationships []Relationship `json:"relationships"`

	Skills            []string `json:"skills"`
	Abilities         []string `json:"abilities"`
	PersonalityTraits []string `json:"personality_traits"`

	Goals   []string `json:"goals"`
	Fears   []string `json:"fears"`
	Secrets []string `json:"secrets"`

	NotablePossessions []string `json:"notable_possessions"`
	Wealth             string   `json:"wealth,omitempty"`

	Organizations []string `json:"organizations"`
	Titles        []string `json:"titles"`
}

// Normalize fills defaults: unknown life status and empty (non-nil) lists.
func (d *PersonData) Normalize() {
	if d.LifeStatus == "" {
		d.LifeStatus = LifeStatusUnknown
	}
	for _, s := range []*[]string{
		&d.DistinguishingMarks, &d.Skills, &d.Abilities, &d.PersonalityTraits,
		&d.Goals, &d.Fears, &d.Secrets, &d.NotablePossessions, &d.Organizations, &d.Titles,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
	if d.ImportantDates == nil {
		d.ImportantDates = []ImportantDate{}
	}
	if d.Relationships == nil {
		d.Relationships = []Relationship{}
	}
	for i := range d.Relationships {
		if d.Relationships[i].Status == "" {
			d.Relationships[i].Status = defaultRelationshipStatus
		}
	}
}

// Validate checks enum membership and numeric ranges.
func (d *PersonData) Validate() error {
	ve := &ValidationError{}
	if d.Gender != "" && !d.Gender.IsValid() {
		ve.Add("gender", "invalid value")
	}
	if !d.LifeStatus.IsValid() {
		ve.Add("life_status", "invalid value")
	}
	if d.Age != nil && (*d.Age < 0 || *d.Age > MaxPersonAge) {
		ve.Add("age", fmt.Sprintf("must be between 0 and %d", MaxPersonAge))
	}
	for i, date := range d.ImportantDates {
		if strings.TrimSpace(date.Event) == "" {
			ve.Add(fmt.Sprintf("important_dates[%d].event", i), "required")
		}
	}
	for i, rel := range d.Relationships {
		if strings.TrimSpace(rel.PersonName) == "" {
			ve.Add(fmt.Sprintf("relationships[%d].person_name", i), "required")
		}
		if strings.TrimSpace(rel.RelationshipType) == "" {
			ve.Add(fmt.Sprintf("relationships[%d].relationship_type", i), "required")
		}
	}
	return ve.Err()
}

// Person is a character: an article of type character plus PersonData.
type Person struct {
	ID      uuid.UUID
	Article Article
	Data    PersonData
}

// NewPerson wraps article, forcing its type to character and mirroring data
// into the article metadata and tags.
func NewPerson(article Article, data PersonData) (*Person, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return nil, err
	}
	p := &Person{Article: article, Data: data}
	p.Sync()
	if err := p.Article.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePerson builds a person with a minimal article.
func CreatePerson(name string, projectID uuid.UUID, authorID *uuid.UUID, data PersonData) (*Person, error) {
	content := NewArticleContent()
	content.Summary = defaultPersonSummary
	return NewPerson(Article{
		Title:      name,
		Content:    content,
		Type:       ArticleTypeCharacter,
		Visibility: VisibilityPublic,
		AuthorID:   authorID,
		ProjectID:  projectID,
	}, data)
}

// Sync re-applies the character type, the metadata copy of Data and the
// derived race/occupation/status tags. Call after mutating Data.
func (p *Person) Sync() {
	p.Article.Type = ArticleTypeCharacter
	p.Article.Content.normalize()
	p.Article.Content.SetMetadata(PersonMetadataKey, p.Data)

	c := &p.Article.Content
	c.RemoveTagsWithPrefix("race:")
	c.RemoveTagsWithPrefix("occupation:")
	c.RemoveTagsWithPrefix("status:")
	if p.Data.Race != "" {
		c.AddTag("race:" + strings.ToLower(p.Data.Race))
	}
	if p.Data.Occupation != "" {
		c.AddTag("occupation:" + strings.ToLower(p.Data.Occupation))
	}
	if p.Data.LifeStatus != "" {
		c.AddTag("status:" + p.Data.LifeStatus.String())
	}
}

func (p *Person) Name() string { return p.Article.Title }

// AddImportantDate appends a timeline entry.
func (p *Person) AddImportantDate(date ImportantDate) error {
	if strings.TrimSpace(date.Event) == "" {
		return NewValidationError("event", "required")
	}
	p.Data.ImportantDates = append(p.Data.ImportantDates, date)
	p.Sync()
	return nil
}

// AddRelationship appends a relationship; an empty status becomes "active".
func (p *Person) AddRelationship(rel Relationship) error {
	ve := &ValidationError{}
	if strings.TrimSpace(rel.PersonName) == "" {
		ve.Add("person_name", "required")
	}
	if strings.TrimSpace(rel.RelationshipType) == "" {
		ve.Add("relationship_type", "required")
	}
	if err := ve.Err(); err != nil {
		return err
	}
	if rel.Status == "" {
		rel.Status = defaultRelationshipStatus
	}
	p.Data.Relationships = append(p.Data.Relationships, rel)
	p.Sync()
	return nil
}

func (p *Person) AddSkill(skill string) {
	p.Data.Skills = appendUnique(p.Data.Skills, skill)
	p.Sync()
}

func (p *Person) AddOrganization(org string) {
	p.Data.Organizations = appendUnique(p.Data.Organizations, org)
	p.Sync()
}

func (p *Person) AddTitle(title string) {
	p.Data.Titles = appendUnique(p.Data.Titles, title)
	p.Sync()
}

// SetBirthDate records the birth date and adds a "Birth" timeline entry.
func (p *Person) SetBirthDate(date string) {
	p.Data.BirthDate = date
	p.Data.ImportantDates = append(p.Data.ImportantDates, ImportantDate{Date: date, Event: "Birth"})
	p.Sync()
}

// SetDeathDate records the death date, marks the person dead and adds a
// "Death" timeline entry.
func (p *Person) SetDeathDate(date string) {
	p.Data.DeathDate = date
	p.Data.LifeStatus = LifeStatusDead
	p.Data.ImportantDates = append(p.Data.ImportantDates, ImportantDate{Date: date, Event: "Death"})
	p.Sync()
}

func (p *Person) IsAlive() bool {
	return p.Data.LifeStatus == LifeStatusAlive
}

// AgeDescription returns a life-stage label such as "Adult (34 years old)".
func (p *Person) AgeDescription() string {
	if p.Data.Age == nil {
		return "Age unknown"
	}
	age := *p.Data.Age
	var stage string
	switch {
	case age < 13:
		stage = "Child"
	case age < 20:
		stage = "Teenager"
	case age < 30:
		stage = "Young adult"
	case age < 50:
		stage = "Adult"
	case age < 70:
		stage = "Middle-aged"
	default:
		stage = "Elder"
	}
	return fmt.Sprintf("%s (%d years old)", stage, age)
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
