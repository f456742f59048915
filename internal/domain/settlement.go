package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const SettlementMetadataKey = "settlement_data"

// Coordinates is a map position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SettlementData is the location-specific attribute bag.
type SettlementData struct {
	SettlementType  SettlementType  `json:"settlement_type"`
	Population      *int            `json:"population,omitempty"`
	GovernmentType  *GovernmentType `json:"government_type,omitempty"`
	RulerName       string          `json:"ruler_name,omitempty"`
	FoundedDate     string          `json:"founded_date,omitempty"`
	NotableFeatures []string        `json:"notable_features"`
	TradeGoods      []string        `json:"trade_goods"`
	Defenses        string          `json:"defenses,omitempty"`
	Climate         string          `json:"climate,omitempty"`
	Terrain         string          `json:"terrain,omitempty"`
	WealthLevel     string          `json:"wealth_level,omitempty"`

	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	Region            string       `json:"region,omitempty"`
	NearbySettlements []string     `json:"nearby_settlements"`

	PrimaryIndustry     string   `json:"primary_industry,omitempty"`
	SecondaryIndustries []string `json:"secondary_industries"`

	PredominantRace string   `json:"predominant_race,omitempty"`
	LanguagesSpoken []string `json:"languages_spoken"`
	Religions       []string `json:"religions"`
	Festivals       []string `json:"festivals"`
}

// Normalize replaces nil lists with empty ones.
func (d *SettlementData) Normalize() {
	for _, s := range []*[]string{
		&d.NotableFeatures, &d.TradeGoods, &d.NearbySettlements, &d.SecondaryIndustries,
		&d.LanguagesSpoken, &d.Religions, &d.Festivals,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
}

func (d *SettlementData) Validate() error {
	ve := &ValidationError{}
	if !d.SettlementType.IsValid() {
		ve.Add("settlement_type", "invalid value")
	}
	if d.Population != nil && *d.Population < 0 {
		ve.Add("population", "must not be negative")
	}
	if d.GovernmentType != nil && !d.GovernmentType.IsValid() {
		ve.Add("government_type", "invalid value")
	}
	if c := d.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 {
			ve.Add("coordinates.lat", "must be between -90 and 90")
		}
		if c.Lng < -180 || c.Lng > 180 {
			ve.Add("coordinates.lng", "must be between -180 and 180")
		}
	}
	return ve.Err()
}

// Settlement is a location article plus SettlementData.
type Settlement struct {
	ID      uuid.UUID
	Article Article
	Data    SettlementData
}

// NewSettlement wraps article, forcing its type to location and mirroring data
// into the article metadata and the settlement:<type> tag.
func NewSettlement(article Article, data SettlementData) (*Settlement, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return nil, err
	}
	s := &Settlement{Article: article, Data: data}
	s.Sync()
	if err := s.Article.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateSettlement builds a settlement with a minimal article.
func CreateSettlement(name string, projectID uuid.UUID, authorID *uuid.UUID, data SettlementData) (*Settlement, error) {
	content := NewArticleContent()
	content.Summary = fmt.Sprintf("A %s in the world.", data.SettlementType)
	return NewSettlement(Article{
		Title:      name,
		Content:    content,
		Type:       ArticleTypeLocation,
		Visibility: VisibilityPublic,
		AuthorID:   authorID,
		ProjectID:  projectID,
	}, data)
}

// Sync re-applies the location type, metadata copy and type tag.
func (s *Settlement) Sync() {
	s.Article.Type = ArticleTypeLocation
	s.Article.Content.normalize()
	s.Article.Content.SetMetadata(SettlementMetadataKey, s.Data)
	s.Article.Content.RemoveTagsWithPrefix("settlement:")
	s.Article.Content.AddTag("settlement:" + s.Data.SettlementType.String())
}

func (s *Settlement) Name() string { return s.Article.Title }

// PopulationCategory buckets the population; unknown when it is not set.
func (s *Settlement) PopulationCategory() PopulationCategory {
	return CategorizePopulation(s.Data.Population)
}

// CategorizePopulation maps a population to its category.
func CategorizePopulation(population *int) PopulationCategory {
	if population == nil {
		return PopulationUnknown
	}
	switch pop := *population; {
	case pop < 100:
		return PopulationTiny
	case pop < 1000:
		return PopulationSmall
	case pop < 5000:
		return PopulationMedium
	case pop < 20000:
		return PopulationLarge
	case pop < 100000:
		return PopulationVeryLarge
	default:
		return PopulationMassive
	}
}

func (s *Settlement) AddNotableFeature(feature string) {
	s.Data.NotableFeatures = appendUnique(s.Data.NotableFeatures, feature)
	s.Sync()
}

func (s *Settlement) AddTradeGood(good string) {
	s.Data.TradeGoods = appendUnique(s.Data.TradeGoods, good)
	s.Sync()
}

func (s *Settlement) AddNearbySettlement(name string) {
	s.Data.NearbySettlements = appendUnique(s.Data.NearbySettlements, name)
	s.Sync()
}

func (s *Settlement) SetRuler(name string) {
	s.Data.RulerName = name
	s.Sync()
}
