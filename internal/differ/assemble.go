package differ

import "github.com/ralt/bundlediff/internal/models"

// Assemble matches both collections and emits one diff record per key that
// is one-sided or differs in a tracked field. The result is never nil.
func Assemble[R models.Record](left, right []R, rules Rules[R]) []models.DiffRecord {
	pairs := Match(left, right)
	out := make([]models.DiffRecord, 0, len(pairs))

	for _, p := range pairs {
		if p.Side != SideBoth {
			out = append(out, rules.Row(p, nil))
			continue
		}
		changed := rules.Changed(p.Left, p.Right)
		if len(changed) == 0 {
			continue
		}
		out = append(out, rules.Row(p, changed))
	}

	return out
}

// DiffBundles compares two bundle collections
func DiffBundles(left, right []models.Bundle) []models.DiffRecord {
	return Assemble(left, right, BundleRules{})
}

// DiffPackages compares two package collections
func DiffPackages(left, right []models.Package) []models.DiffRecord {
	return Assemble(left, right, PackageRules{})
}

// Compare diffs two classified documents using the left document's variant.
// Callers must pass documents of the same variant.
func Compare(left, right *models.Document) []models.DiffRecord {
	switch left.Variant {
	case models.VariantBundle:
		return DiffBundles(left.Bundles, right.Bundles)
	case models.VariantPackage:
		return DiffPackages(left.Packages, right.Packages)
	default:
		return []models.DiffRecord{}
	}
}
