// internal/domain/models/design.go
package models

import "encoding/json"

// Design is a jewellery design belonging to a catalogue. The image itself
// lives in the object store; ImageID only references it.
type Design struct {
	ID                 string             `bson:"id" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Description        string             `bson:"description" json:"description"`
	TimeRequired       string             `bson:"timeRequired" json:"timeRequired"`
	TotalMaterialCosts float64            `bson:"totalMaterialCosts" json:"totalMaterialCosts"`
	Price              float64            `bson:"price" json:"price"`
	ImageID            string             `bson:"imageId" json:"imageId"`
	Materials          []RequiredMaterial `bson:"materials" json:"materials"`
}

// RequiredMaterial references a material needed by a design together with
// how much of it is required. It is a reference, not ownership: the id is
// resolved against the materials collection at cost-calculation time.
type RequiredMaterial struct {
	ID               string  `bson:"id" json:"id"`
	RequiredLength   float64 `bson:"requiredLength,omitempty" json:"requiredLength,omitempty"`
	RequiredQuantity int     `bson:"requiredQuantity,omitempty" json:"requiredQuantity,omitempty"`
}

// UploadDesign is the design creation payload. Materials arrives either as
// a structured list or as a JSON-encoded string (multipart forms send the
// latter), so it is kept raw until the design service parses it.
type UploadDesign struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	TimeRequired       string          `json:"timeRequired"`
	TotalMaterialCosts float64         `json:"totalMaterialCosts"`
	Price              float64         `json:"price"`
	Materials          json.RawMessage `json:"materials"`
}
