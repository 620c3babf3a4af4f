package domain

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaItem descreve um ativo de mídia do criativo. Duração e thumbnail só
// se aplicam a vídeo.
type MediaItem struct {
	Type            MediaType `json:"type"`
	URL             string    `json:"url"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
	DurationSeconds float64   `json:"duration_seconds,omitempty"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
}

// UnifiedCreative são exatamente os ativos que um distribuidor mapeia para
// os objetos de criativo nativos da plataforma
type UnifiedCreative struct {
	Headline       string      `json:"headline"`
	Body           string      `json:"body"`
	Description    string      `json:"description,omitempty"`
	CallToAction   string      `json:"call_to_action"`
	DestinationURL string      `json:"destination_url"`
	Media          []MediaItem `json:"media"`
}

// FirstVideo retorna o primeiro item de vídeo do criativo, se houver
func (c UnifiedCreative) FirstVideo() *MediaItem {
	for i := range c.Media {
		if c.Media[i].Type == MediaTypeVideo {
			return &c.Media[i]
		}
	}
	return nil
}
