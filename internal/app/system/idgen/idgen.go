// Package idgen provides injected identifier generation so services never
// couple to a specific id format. Any collision-resistant string scheme
// satisfies the contract.
package idgen

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Generator produces globally unique string identifiers.
type Generator interface {
	Generate() string
}

// ObjectID generates 24-hex-digit Mongo ObjectID strings. Used for
// catalogue ids, which must parse as surrogate ObjectIDs.
type ObjectID struct{}

func (ObjectID) Generate() string {
	return primitive.NewObjectID().Hex()
}

// UUID generates random UUID strings. Used for the natural string ids of
// designs, materials, and stored images.
type UUID struct{}

func (UUID) Generate() string {
	return uuid.NewString()
}
