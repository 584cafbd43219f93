package model

import (
	"time"

	"github.com/sergeii/sg41/internal/core/entities/key"
)

type NewKey struct {
	Name     string   `binding:"required,max=64"          json:"name"`
	Patterns []string `binding:"required,len=6,dive,pins" json:"patterns"`
}

type GenerateKey struct {
	Name string `binding:"required,max=64" json:"name"`
}

type Key struct {
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Patterns  []string  `json:"patterns"` // 1 for an active cam, 0 for an inactive one
	CreatedAt time.Time `json:"created_at"`
}

func NewKeyFromDomain(k key.Key) Key {
	return Key{
		Name:      k.Name,
		Slug:      k.Slug,
		Patterns:  k.Patterns(),
		CreatedAt: k.CreatedAt,
	}
}
