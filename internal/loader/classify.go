package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ralt/bundlediff/internal/models"
)

var (
	// ErrMixedTypes is returned when one document is a bundle list and the other a package list
	ErrMixedTypes = errors.New("Please provide same type of JSON (both Bundle or both Package) for comparison")

	// ErrIncomplete is returned when only one of the documents could be classified
	ErrIncomplete = errors.New("Please provide valid JSON in both inputs for comparison")

	// ErrNoInput is returned when neither document could be classified
	ErrNoInput = errors.New("Provide valid Bundle/Package JSON for comparison")
)

// Classify sniffs the variant of a decoded document: a top-level "data"
// key means bundles, "results" means packages.
func Classify(root interface{}) models.Variant {
	obj, ok := root.(map[string]interface{})
	if !ok {
		return models.VariantUnknown
	}
	if truthy(obj["data"]) {
		return models.VariantBundle
	}
	if truthy(obj["results"]) {
		return models.VariantPackage
	}
	return models.VariantUnknown
}

// truthy treats null, false, "" and zero as absent
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// Pair decides which comparison applies to two classified documents
func Pair(left, right models.Variant) (models.Variant, error) {
	switch {
	case left != models.VariantUnknown && left == right:
		return left, nil
	case left != models.VariantUnknown && right != models.VariantUnknown:
		return models.VariantUnknown, &models.DiffError{Type: models.ErrTypeMismatch, Err: ErrMixedTypes}
	case left != models.VariantUnknown || right != models.VariantUnknown:
		return models.VariantUnknown, &models.DiffError{Type: models.ErrInvalidShape, Err: ErrIncomplete}
	default:
		return models.VariantUnknown, &models.DiffError{Type: models.ErrInvalidShape, Err: ErrNoInput}
	}
}

// Extract locates the variant's collection in a decoded document and
// converts its entries. Non-object entries become zero-valued records.
func Extract(in *Input, variant models.Variant) (*models.Document, error) {
	field := variant.CollectionField()
	if field == "" {
		return nil, &models.DiffError{
			Type:  models.ErrInvalidShape,
			Input: in.Path,
			Err:   fmt.Errorf("unknown document type"),
		}
	}

	var items []interface{}
	if obj, ok := in.Root.(map[string]interface{}); ok {
		items, ok = obj[field].([]interface{})
		if !ok {
			items = nil
		}
	}
	if items == nil {
		return nil, &models.DiffError{
			Type:  models.ErrInvalidShape,
			Input: in.Path,
			Err:   fmt.Errorf("Both JSONs must contain a '%s' array", field),
		}
	}

	doc := &models.Document{Variant: variant}
	for _, item := range items {
		m, _ := item.(map[string]interface{})
		switch variant {
		case models.VariantBundle:
			doc.Bundles = append(doc.Bundles, models.BundleFromMap(m))
		case models.VariantPackage:
			doc.Packages = append(doc.Packages, models.PackageFromMap(m))
		}
	}
	return doc, nil
}
