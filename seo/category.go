package seo

import "strings"

// The CMS accepts free-form category and level text so editors can write in
// Turkish or English; structured data needs the closed vocabularies below.
// Normalization is pure, case-insensitive, and never fails: unknown
// categories fall back to CategoryOther, unknown levels to the empty Level.

type Category string

const (
	CategoryMusic       Category = "music"
	CategoryVisualArts  Category = "visual-arts"
	CategoryPhotography Category = "photography"
	CategoryMixedMedia  Category = "mixed-media"
	CategoryOther       Category = "other"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var categorySpellings = map[string]Category{
	"music": CategoryMusic,
	"müzik": CategoryMusic,
	"muzik": CategoryMusic,
	"musik": CategoryMusic,

	"visual-arts":     CategoryVisualArts,
	"visual arts":     CategoryVisualArts,
	"visualarts":      CategoryVisualArts,
	"görsel sanatlar": CategoryVisualArts,
	"gorsel sanatlar": CategoryVisualArts,
	"resim":           CategoryVisualArts,
	"sanat":           CategoryVisualArts,

	"photography":   CategoryPhotography,
	"fotoğraf":      CategoryPhotography,
	"fotograf":      CategoryPhotography,
	"fotoğrafçılık": CategoryPhotography,
	"fotografcilik": CategoryPhotography,
	"photo":         CategoryPhotography,

	"mixed-media": CategoryMixedMedia,
	"mixed media": CategoryMixedMedia,
	"mixedmedia":  CategoryMixedMedia,
	"karma medya": CategoryMixedMedia,
	"karma":       CategoryMixedMedia,

	"other": CategoryOther,
	"diğer": CategoryOther,
	"diger": CategoryOther,
}

var levelSpellings = map[string]Level{
	"beginner":  LevelBeginner,
	"başlangıç": LevelBeginner,
	"baslangic": LevelBeginner,

	"intermediate": LevelIntermediate,
	"orta":         LevelIntermediate,

	"advanced": LevelAdvanced,
	"ileri":    LevelAdvanced,
}

// NormalizeCategory maps raw editor input to the closed category set.
// Absent or unknown input maps to CategoryOther.
func NormalizeCategory(raw string) Category {
	if raw == "" {
		return CategoryOther
	}
	if cat, ok := categorySpellings[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return cat
	}
	return CategoryOther
}

// NormalizeLevel maps raw editor input to the closed level set. Unlike
// categories, an absent or unknown level stays empty: level is optional
// everywhere it is used, category is not.
func NormalizeLevel(raw string) Level {
	if raw == "" {
		return ""
	}
	if lvl, ok := levelSpellings[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return lvl
	}
	return ""
}

// DisplayName returns the Turkish label shown in page chrome.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMusic:
		return "Müzik"
	case CategoryVisualArts:
		return "Görsel Sanatlar"
	case CategoryPhotography:
		return "Fotoğrafçılık"
	case CategoryMixedMedia:
		return "Karma Medya"
	default:
		return "Diğer"
	}
}

// DisplayName returns the Turkish label for a level; empty levels render
// nothing.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Başlangıç"
	case LevelIntermediate:
		return "Orta"
	case LevelAdvanced:
		return "İleri"
	default:
		return ""
	}
}
