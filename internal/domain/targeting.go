package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAll    Gender = "all"
)

type LocationType string

const (
	LocationCountry LocationType = "country"
	LocationRegion  LocationType = "region"
	LocationCity    LocationType = "city"
	LocationZip     LocationType = "zip"
)

// Location descreve uma localização de segmentação. Latitude/longitude e
// raio só fazem sentido para os tipos city e zip.
type Location struct {
	Type      LocationType `json:"type"`
	Value     string       `json:"value"`
	RadiusKm  *float64     `json:"radius_km,omitempty"`
	Latitude  *float64     `json:"latitude,omitempty"`
	Longitude *float64     `json:"longitude,omitempty"`
}

// UnifiedTargeting é a segmentação agnóstica de plataforma. Os campos de
// extensão carregam dimensões exclusivas de uma plataforma e nunca são
// lidos pelos distribuidores das demais (acesso apenas via ForPlatform).
type UnifiedTargeting struct {
	AgeMin     int                 `json:"age_min"`
	AgeMax     int                 `json:"age_max"`
	Genders    []Gender            `json:"genders"`
	Locations  []Location          `json:"locations"`
	Interests  []string            `json:"interests,omitempty"`
	Behaviors  []string            `json:"behaviors,omitempty"`
	Languages  []string            `json:"languages,omitempty"`
	Extensions TargetingExtensions `json:"extensions,omitempty"`
}

// TargetingExtension é a variante discriminada por plataforma das dimensões
// de segmentação exclusivas de cada rede
type TargetingExtension interface {
	ExtensionPlatform() Platform
}

// TargetingExtensions agrupa as extensões opcionais por plataforma. Cada
// distribuidor deve obter somente a sua via ForPlatform, o que impede o
// vazamento de campos entre plataformas.
type TargetingExtensions struct {
	Meta     *MetaTargeting     `json:"facebook,omitempty"`
	Google   *GoogleTargeting   `json:"google,omitempty"`
	TikTok   *TikTokTargeting   `json:"tiktok,omitempty"`
	LinkedIn *LinkedInTargeting `json:"linkedin,omitempty"`
}

// ForPlatform retorna a extensão da plataforma informada, ou nil se o
// chamador não anexou nenhuma
func (e TargetingExtensions) ForPlatform(p Platform) TargetingExtension {
	switch p {
	case PlatformMeta:
		if e.Meta != nil {
			return e.Meta
		}
	case PlatformGoogle:
		if e.Google != nil {
			return e.Google
		}
	case PlatformTikTok:
		if e.TikTok != nil {
			return e.TikTok
		}
	case PlatformLinkedIn:
		if e.LinkedIn != nil {
			return e.LinkedIn
		}
	}
	return nil
}

type MetaTargeting struct {
	LifeEvents      []string `json:"life_events,omitempty"`
	CustomAudiences []string `json:"custom_audiences,omitempty"`
	Placements      []string `json:"placements,omitempty"`
}

func (*MetaTargeting) ExtensionPlatform() Platform { return PlatformMeta }

type GoogleTargeting struct {
	Keywords       []string `json:"keywords,omitempty"`
	NegativeWords  []string `json:"negative_keywords,omitempty"`
	TopicIDs       []string `json:"topic_ids,omitempty"`
	AffinityGroups []string `json:"affinity_groups,omitempty"`
}

func (*GoogleTargeting) ExtensionPlatform() Platform { return PlatformGoogle }

type TikTokTargeting struct {
	Hashtags         []string `json:"hashtags,omitempty"`
	CreatorCategory  []string `json:"creator_categories,omitempty"`
	DeviceOS         []string `json:"device_os,omitempty"`
	VideoInteraction []string `json:"video_interactions,omitempty"`
}

func (*TikTokTargeting) ExtensionPlatform() Platform { return PlatformTikTok }

type LinkedInTargeting struct {
	JobTitles     []string `json:"job_titles,omitempty"`
	JobFunctions  []string `json:"job_functions,omitempty"`
	Industries    []string `json:"industries,omitempty"`
	CompanySizes  []string `json:"company_sizes,omitempty"`
	SeniorityTags []string `json:"seniorities,omitempty"`
}

func (*LinkedInTargeting) ExtensionPlatform() Platform { return PlatformLinkedIn }
