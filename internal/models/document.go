package models

// Document is a classified input with its located collection
type Document struct {
	Variant  Variant
	Bundles  []Bundle
	Packages []Package
}

// Len returns the number of records in the document's collection
func (d *Document) Len() int {
	switch d.Variant {
	case VariantBundle:
		return len(d.Bundles)
	case VariantPackage:
		return len(d.Packages)
	default:
		return 0
	}
}
