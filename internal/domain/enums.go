package domain

// ArticleType classifies an article. Specializations force their own type.
type ArticleType string

const (
	ArticleTypeGeneral      ArticleType = "general"
	ArticleTypeCharacter    ArticleType = "character"
	ArticleTypeLocation     ArticleType = "location"
	ArticleTypeItem         ArticleType = "item"
	ArticleTypeLore         ArticleType = "lore"
	ArticleTypeEvent        ArticleType = "event"
	ArticleTypeOrganization ArticleType = "organization"
)

func (t ArticleType) String() string { return string(t) }

func (t ArticleType) IsValid() bool {
	switch t {
	case ArticleTypeGeneral, ArticleTypeCharacter, ArticleTypeLocation, ArticleTypeItem,
		ArticleTypeLore, ArticleTypeEvent, ArticleTypeOrganization:
		return true
	}
	return false
}

// Visibility is the per-article access tier.
type Visibility string

const (
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityPublic   Visibility = "public"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityUnlisted, VisibilityPrivate, VisibilityPublic:
		return true
	}
	return false
}

// Gender of a person.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
	GenderOther     Gender = "other"
	GenderUnknown   Gender = "unknown"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderOther, GenderUnknown:
		return true
	}
	return false
}

// LifeStatus of a person.
type LifeStatus string

const (
	LifeStatusAlive    LifeStatus = "alive"
	LifeStatusDead     LifeStatus = "dead"
	LifeStatusMissing  LifeStatus = "missing"
	LifeStatusUnknown  LifeStatus = "unknown"
	LifeStatusUndead   LifeStatus = "undead"
	LifeStatusImmortal LifeStatus = "immortal"
)

func (s LifeStatus) String() string { return string(s) }

func (s LifeStatus) IsValid() bool {
	switch s {
	case LifeStatusAlive, LifeStatusDead, LifeStatusMissing, LifeStatusUnknown,
		LifeStatusUndead, LifeStatusImmortal:
		return true
	}
	return false
}

// SettlementType is the size/role class of a settlement.
type SettlementType string

const (
	SettlementTypeCity        SettlementType = "city"
	SettlementTypeTown        SettlementType = "town"
	SettlementTypeVillage     SettlementType = "village"
	SettlementTypeHamlet      SettlementType = "hamlet"
	SettlementTypeMetropolis  SettlementType = "metropolis"
	SettlementTypeCapital     SettlementType = "capital"
	SettlementTypeFortress    SettlementType = "fortress"
	SettlementTypeOutpost     SettlementType = "outpost"
	SettlementTypeTradingPost SettlementType = "trading_post"
	SettlementTypeRuins       SettlementType = "ruins"
)

func (t SettlementType) String() string { return string(t) }

func (t SettlementType) IsValid() bool {
	switch t {
	case SettlementTypeCity, SettlementTypeTown, SettlementTypeVillage, SettlementTypeHamlet,
		SettlementTypeMetropolis, SettlementTypeCapital, SettlementTypeFortress,
		SettlementTypeOutpost, SettlementTypeTradingPost, SettlementTypeRuins:
		return true
	}
	return false
}

// GovernmentType of a settlement.
type GovernmentType string

const (
	GovernmentMonarchy     GovernmentType = "monarchy"
	GovernmentDemocracy    GovernmentType = "democracy"
	GovernmentOligarchy    GovernmentType = "oligarchy"
	GovernmentTheocracy    GovernmentType = "theocracy"
	GovernmentTribal       GovernmentType = "tribal"
	GovernmentAnarchy      GovernmentType = "anarchy"
	GovernmentCouncil      GovernmentType = "council"
	GovernmentDictatorship GovernmentType = "dictatorship"
)

func (g GovernmentType) String() string { return string(g) }

func (g GovernmentType) IsValid() bool {
	switch g {
	case GovernmentMonarchy, GovernmentDemocracy, GovernmentOligarchy, GovernmentTheocracy,
		GovernmentTribal, GovernmentAnarchy, GovernmentCouncil, GovernmentDictatorship:
		return true
	}
	return false
}

// PopulationCategory is a coarse bucket derived from a settlement population.
type PopulationCategory string

const (
	PopulationUnknown   PopulationCategory = "unknown"
	PopulationTiny      PopulationCategory = "tiny"
	PopulationSmall     PopulationCategory = "small"
	PopulationMedium    PopulationCategory = "medium"
	PopulationLarge     PopulationCategory = "large"
	PopulationVeryLarge PopulationCategory = "very_large"
	PopulationMassive   PopulationCategory = "massive"
)

func (c PopulationCategory) String() string { return string(c) }
