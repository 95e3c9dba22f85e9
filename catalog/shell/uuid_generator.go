package shell

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
)

// UUIDGenerator implements core.IDGenerator with random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextID returns a freshly generated UUID string.
func (g UUIDGenerator) NextID() string {
	return uuid.New().String()
}

// Ensure UUIDGenerator implements core.IDGenerator.
var _ core.IDGenerator = UUIDGenerator{}
