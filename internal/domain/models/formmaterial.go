// internal/domain/models/formmaterial.go
package models

// FormMaterial is the purchase-form input for creating a material. Instead
// of a derived per-unit price it carries the raw purchasing data: how many
// packs were bought, what one pack cost, and the per-pack quantity field for
// the variant (Length for wire/chain, Quantity for beads).
//
// FormMaterial is never persisted as-is; the pricing converter turns it into
// a stored Material.
type FormMaterial struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	PurchaseURL string `json:"purchaseUrl"`
	Type        string `json:"type"`

	WireType  string  `json:"wireType,omitempty"`
	MetalType string  `json:"metalType,omitempty"`
	Length    float64 `json:"length,omitempty"`

	Diameter float64 `json:"diameter,omitempty"`

	Colour   string `json:"colour,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	Packs        int     `json:"packs"`
	PricePerPack float64 `json:"pricePerPack"`
}

// FormMaterialKeys maps each material type tag to the set of JSON keys a
// purchase form of that type must carry. Creation validates the raw payload
// against this set: missing keys fail, unknown keys are stripped.
var FormMaterialKeys = map[string][]string{
	MaterialTypeWire: {
		"name", "brand", "purchaseUrl", "type",
		"wireType", "metalType", "diameter", "length",
		"packs", "pricePerPack",
	},
	MaterialTypeBead: {
		"name", "brand", "purchaseUrl", "type",
		"colour", "quantity", "diameter",
		"packs", "pricePerPack",
	},
	MaterialTypeChain: {
		"name", "brand", "purchaseUrl", "type",
		"wireType", "metalType", "diameter", "length",
		"packs", "pricePerPack",
	},
	MaterialTypeEarHook: {
		"name", "brand", "purchaseUrl", "type",
		"wireType", "metalType", "diameter", "length", "quantity",
		"packs", "pricePerPack",
	},
}
