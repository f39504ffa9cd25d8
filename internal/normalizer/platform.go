package normalizer

import (
	"logscrub/internal/literal"
	"logscrub/internal/models"
)

// PlatformNormalizer maps free-form platform spellings onto the closed
// enumeration through a fixed alias table. Unmapped spellings, including
// missing and null values, fall through to Other; the mapping is total and
// never errors.
type PlatformNormalizer struct {
	aliases map[string]models.Platform
}

// NewPlatformNormalizer builds a normalizer from an alias table. Alias
// matching is exact, including case: "android" and "Android" are separate
// table entries.
func NewPlatformNormalizer(aliases map[string]string) *PlatformNormalizer {
	n := &PlatformNormalizer{aliases: make(map[string]models.Platform, len(aliases))}
	for alias, canonical := range aliases {
		n.aliases[alias] = models.Platform(canonical)
	}
	return n
}

// Normalize returns the canonical platform for a raw platform value.
func (n *PlatformNormalizer) Normalize(v literal.Value) models.Platform {
	if p, ok := n.aliases[v.Text()]; ok {
		return p
	}
	return models.PlatformOther
}
