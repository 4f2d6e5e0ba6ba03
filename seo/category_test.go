package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"Müzik", CategoryMusic},
		{"muzik", CategoryMusic},
		{"MUSIC", CategoryMusic},
		{"Görsel Sanatlar", CategoryVisualArts},
		{"resim", CategoryVisualArts},
		{"Fotoğrafçılık", CategoryPhotography},
		{"fotograf", CategoryPhotography},
		{"Karma Medya", CategoryMixedMedia},
		{"  müzik  ", CategoryMusic},
		{"heykel", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want Level
	}{
		{"Başlangıç", LevelBeginner},
		{"baslangic", LevelBeginner},
		{"Orta", LevelIntermediate},
		{"advanced", LevelAdvanced},
		{"bilinmeyen", Level("")},
		{"", Level("")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLevel(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Müzik", CategoryMusic.DisplayName())
	assert.Equal(t, "Diğer", CategoryOther.DisplayName())
	assert.Equal(t, "Diğer", Category("garbage").DisplayName())
}

func TestLevelDisplayName(t *testing.T) {
	assert.Equal(t, "İleri", LevelAdvanced.DisplayName())
	assert.Equal(t, "", Level("").DisplayName())
}
