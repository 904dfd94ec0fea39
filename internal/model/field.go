package model

import "fmt"

// FieldKind identifies one of the six mandatory label declarations under the
// Legal Metrology (Packaged Commodities) Rules, 2011
type FieldKind string

const (
	FieldManufacturer      FieldKind = "manufacturer"        // Name and address of manufacturer/packer/importer
	FieldNetQuantity       FieldKind = "net_quantity"        // Net quantity in standard units
	FieldMRP               FieldKind = "mrp"                 // Maximum Retail Price inclusive of all taxes
	FieldConsumerCare      FieldKind = "consumer_care"       // Consumer care phone/email/address
	FieldDateOfManufacture FieldKind = "date_of_manufacture" // Date of manufacture/import (or best-before/expiry)
	FieldCountryOfOrigin   FieldKind = "country_of_origin"   // Country of origin (Made in / Product of)
)

// MissingValue is the only absence marker downstream consumers may rely on
const MissingValue = "MISSING"

// AllFields returns the six mandatory fields in extraction order.
// The order is fixed; extraction walks it deterministically.
func AllFields() []FieldKind {
	return []FieldKind{
		FieldMRP,
		FieldNetQuantity,
		FieldManufacturer,
		FieldDateOfManufacture,
		FieldCountryOfOrigin,
		FieldConsumerCare,
	}
}

// IsValid reports whether k is one of the six mandatory fields
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldManufacturer, FieldNetQuantity, FieldMRP,
		FieldConsumerCare, FieldDateOfManufacture, FieldCountryOfOrigin:
		return true
	}
	return false
}

// Label returns the human-readable name used in reports and issue messages
func (k FieldKind) Label() string {
	switch k {
	case FieldManufacturer:
		return "Manufacturer/Packer"
	case FieldNetQuantity:
		return "Net Quantity"
	case FieldMRP:
		return "MRP"
	case FieldConsumerCare:
		return "Consumer Care"
	case FieldDateOfManufacture:
		return "Date of Manufacture"
	case FieldCountryOfOrigin:
		return "Country of Origin"
	default:
		return string(k)
	}
}

// FieldRecord is the per-field extraction outcome
type FieldRecord struct {
	Field   FieldKind `json:"field"`   // Which declaration this record covers
	Present bool      `json:"present"` // Whether an accepted value was found
	Value   string    `json:"value"`   // Matched value, or MissingValue when absent
}

// KnownFields maps fields to values the caller already knows with certainty,
// e.g. a numeric MRP captured from structured listing data. A known value
// bypasses pattern matching for that field only.
type KnownFields map[FieldKind]string

// Validate rejects unrecognized field keys so integration bugs surface at the
// boundary instead of being silently ignored.
func (kf KnownFields) Validate() error {
	for k := range kf {
		if !k.IsValid() {
			return fmt.Errorf("unknown field kind %q in known fields", string(k))
		}
	}
	return nil
}
