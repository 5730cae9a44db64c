// Package pricing converts purchase-form material data into stored
// materials with normalized per-unit costs. Conversion is pure: no state,
// no I/O, no validation of the numbers themselves.
package pricing

import (
	"fmt"

	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
)

// UnsupportedTypeError reports a material type tag the converter has no
// case for. EAR_HOOK is in the recognized taxonomy but carries no purchase
// conversion, so it lands here too.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported material type: %s", e.Type)
}

// Convert derives the stored material for a purchase form. The returned
// material has no id assigned; the caller owns id generation.
//
// Division is plain float64 with no guards. Degenerate inputs propagate:
// zero packs yields NaN, a zero per-pack quantity with packs > 0 yields
// +Inf. Rejecting those is the caller's decision, not the converter's.
func Convert(form models.FormMaterial) (models.Material, error) {
	switch form.Type {
	case models.MaterialTypeWire:
		return convertWire(form), nil
	case models.MaterialTypeBead:
		return convertBead(form), nil
	case models.MaterialTypeChain:
		return convertChain(form), nil
	default:
		return models.Material{}, &UnsupportedTypeError{Type: form.Type}
	}
}

func convertWire(form models.FormMaterial) models.Material {
	totalLength := float64(form.Packs) * form.Length
	totalPrice := float64(form.Packs) * form.PricePerPack

	return models.Material{
		Type:          form.Type,
		Name:          form.Name,
		Brand:         form.Brand,
		PurchaseURL:   form.PurchaseURL,
		Diameter:      form.Diameter,
		WireType:      form.WireType,
		MetalType:     form.MetalType,
		Length:        form.Length,
		PricePerMeter: totalPrice / totalLength,
	}
}

func convertBead(form models.FormMaterial) models.Material {
	totalQuantity := float64(form.Packs) * float64(form.Quantity)
	totalPrice := float64(form.Packs) * form.PricePerPack

	return models.Material{
		Type:         form.Type,
		Name:         form.Name,
		Brand:        form.Brand,
		PurchaseURL:  form.PurchaseURL,
		Diameter:     form.Diameter,
		Colour:       form.Colour,
		Quantity:     form.Quantity,
		PricePerBead: totalPrice / totalQuantity,
	}
}

// Chains have no per-unit price modeled; the purchase fields are simply
// dropped.
func convertChain(form models.FormMaterial) models.Material {
	return models.Material{
		Type:        form.Type,
		Name:        form.Name,
		Brand:       form.Brand,
		PurchaseURL: form.PurchaseURL,
		MetalType:   form.MetalType,
		WireType:    form.WireType,
		Diameter:    form.Diameter,
		Length:      form.Length,
	}
}
