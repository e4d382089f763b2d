package models

import "fmt"

// Variant selects which record shape governs key extraction and tracked fields
type Variant int

const (
	VariantUnknown Variant = iota
	VariantBundle
	VariantPackage
)

// String returns the string representation of Variant
func (v Variant) String() string {
	switch v {
	case VariantBundle:
		return "bundle"
	case VariantPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Label returns the human-readable document kind
func (v Variant) Label() string {
	switch v {
	case VariantBundle:
		return "Bundle"
	case VariantPackage:
		return "Package"
	default:
		return "Invalid"
	}
}

// CollectionField returns the top-level document field holding the records
func (v Variant) CollectionField() string {
	switch v {
	case VariantBundle:
		return "data"
	case VariantPackage:
		return "results"
	default:
		return ""
	}
}

// ParseVariant converts a flag value into a Variant. "auto" and "" map to
// VariantUnknown, meaning the variant is sniffed from the documents.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "auto":
		return VariantUnknown, nil
	case "bundle", "bundles":
		return VariantBundle, nil
	case "package", "packages":
		return VariantPackage, nil
	default:
		return VariantUnknown, fmt.Errorf("unknown type %q (expected auto, bundle or package)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
