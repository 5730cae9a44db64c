// internal/domain/models/material.go
package models

// Material is a raw material stored in the catalogue. It is a tagged union
// over Type: only the fields declared for the material's type are present
// in a stored document (enforced at the creation boundary).
//
// WIRE and CHAIN share the wire-shaped fields; BEAD carries colour and
// per-pack quantity; EAR_HOOK is recognized in the taxonomy but has no
// derived price.
type Material struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Brand       string `bson:"brand" json:"brand"`
	PurchaseURL string `bson:"purchaseUrl" json:"purchaseUrl"`
	Type        string `bson:"type" json:"type"`

	// Wire / chain / ear hook fields
	WireType  string  `bson:"wireType,omitempty" json:"wireType,omitempty"`
	MetalType string  `bson:"metalType,omitempty" json:"metalType,omitempty"`
	Length    float64 `bson:"length,omitempty" json:"length,omitempty"`

	Diameter float64 `bson:"diameter,omitempty" json:"diameter,omitempty"`

	// Bead / ear hook fields
	Colour   string `bson:"colour,omitempty" json:"colour,omitempty"`
	Quantity int    `bson:"quantity,omitempty" json:"quantity,omitempty"`

	// Derived per-unit prices. CHAIN and EAR_HOOK have no per-unit price
	// modeled, so both stay zero there.
	PricePerMeter float64 `bson:"pricePerMeter,omitempty" json:"pricePerMeter,omitempty"`
	PricePerBead  float64 `bson:"pricePerBead,omitempty" json:"pricePerBead,omitempty"`
}

// Canonical material type tags, stored in Material.Type.
const (
	MaterialTypeWire    = "WIRE"
	MaterialTypeBead    = "BEAD"
	MaterialTypeChain   = "CHAIN"
	MaterialTypeEarHook = "EAR_HOOK"
)

// MaterialTypes is the closed set of recognized material type tags.
var MaterialTypes = []string{
	MaterialTypeWire,
	MaterialTypeBead,
	MaterialTypeChain,
	MaterialTypeEarHook,
}

// IsMaterialType reports whether t is a recognized material type tag.
func IsMaterialType(t string) bool {
	for _, known := range MaterialTypes {
		if t == known {
			return true
		}
	}
	return false
}
