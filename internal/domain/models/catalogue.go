// internal/domain/models/catalogue.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Catalogue is the root aggregate. Its embedded Designs and Materials
// arrays are the source of truth for membership; there is no separate
// foreign-key relation. Designs and materials are additionally stored
// standalone in their own collections for direct lookup by id.
type Catalogue struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Designs   []Design           `bson:"designs" json:"designs"`
	Materials []Material         `bson:"materials" json:"materials"`
}
