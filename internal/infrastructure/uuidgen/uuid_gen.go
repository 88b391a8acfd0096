package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
)

// Generator hands out random (version 4) account ids.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
