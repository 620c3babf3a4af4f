package domain

import "fmt"

// Platform identifica uma plataforma de anúncios suportada
type Platform string

const (
	PlatformMeta     Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
	PlatformLinkedIn Platform = "linkedin"
)

// AllPlatforms lista as plataformas na ordem canônica de exibição
var AllPlatforms = []Platform{
	PlatformMeta,
	PlatformGoogle,
	PlatformTikTok,
	PlatformLinkedIn,
}

// ParsePlatform converte uma tag textual em Platform
func ParsePlatform(tag string) (Platform, error) {
	switch Platform(tag) {
	case PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformLinkedIn:
		return Platform(tag), nil
	}
	return "", fmt.Errorf("plataforma desconhecida: %q", tag)
}

func (p Platform) String() string {
	return string(p)
}
