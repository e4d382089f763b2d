package models

// Record is implemented by both record variants
type Record interface {
	// Key returns the comparison key used to match records across documents
	Key() string
}

// Bundle is an OSGi-style bundle entry from a "data" collection
type Bundle struct {
	SymbolicName Value
	Name         Value
	Version      Value
	State        Value
}

// Key returns the symbolic name, unnormalized. Values of different JSON
// types never share a key.
func (b Bundle) Key() string {
	return b.SymbolicName.MapKey()
}

// Package is a package-manager entry from a "results" collection
type Package struct {
	Name      Value
	Group     Value
	Version   Value
	Created   Value
	Size      Value
	Installed Value
}

// Key returns name and group joined by an underscore, each as text. A group
// containing an underscore can collide with a different name/group pair.
func (p Package) Key() string {
	return p.Name.Text() + "_" + p.Group.Text()
}

// BundleFromMap converts a decoded JSON object into a Bundle
func BundleFromMap(m map[string]interface{}) Bundle {
	return Bundle{
		SymbolicName: fieldValue(m, "symbolicName"),
		Name:         fieldValue(m, "name"),
		Version:      fieldValue(m, "version"),
		State:        fieldValue(m, "state"),
	}
}

// PackageFromMap converts a decoded JSON object into a Package
func PackageFromMap(m map[string]interface{}) Package {
	return Package{
		Name:      fieldValue(m, "name"),
		Group:     fieldValue(m, "group"),
		Version:   fieldValue(m, "version"),
		Created:   fieldValue(m, "created"),
		Size:      fieldValue(m, "size"),
		Installed: fieldValue(m, "installed"),
	}
}
