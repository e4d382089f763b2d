package differ

import "github.com/ralt/bundlediff/internal/models"

// Rules describes how one record variant is compared and displayed
type Rules[R models.Record] interface {
	// Changed returns the tracked fields whose values are not strictly equal
	Changed(left, right R) []string

	// Row builds the diff record for a pair. changed is nil for one-sided pairs.
	Row(p Pair[R], changed []string) models.DiffRecord
}

// BundleRules tracks version and state
type BundleRules struct{}

// Changed implements Rules
func (BundleRules) Changed(left, right models.Bundle) []string {
	var changed []string
	if !left.Version.Equal(right.Version) {
		changed = append(changed, models.FieldVersion)
	}
	if !left.State.Equal(right.State) {
		changed = append(changed, models.FieldState)
	}
	return changed
}

// Row implements Rules
func (BundleRules) Row(p Pair[models.Bundle], changed []string) models.DiffRecord {
	var d models.DiffRecord

	switch p.Side {
	case SideLeftOnly:
		d.Status = models.StatusOnlyInFirst
		d.SymbolicName = p.Left.SymbolicName.Text()
		d.Name = p.Left.Name.Display()
	case SideRightOnly:
		d.Status = models.StatusOnlyInSecond
		d.SymbolicName = p.Right.SymbolicName.Text()
		d.Name = p.Right.Name.Display()
	default:
		d.Status = models.StatusDifferent
		d.SymbolicName = p.Left.SymbolicName.Text()
		d.Name = p.Left.Name.Display()
		if d.Name == "" {
			d.Name = p.Right.Name.Display()
		}
		d.Changed = changed
	}

	if p.Side != SideRightOnly {
		d.Version1 = p.Left.Version.Display()
		d.State1 = p.Left.State.Display()
	}
	if p.Side != SideLeftOnly {
		d.Version2 = p.Right.Version.Display()
		d.State2 = p.Right.State.Display()
	}
	return d
}

// PackageRules tracks version, created, size and installed.
// created is compared on its raw value, never on the formatted date.
type PackageRules struct{}

// Changed implements Rules
func (PackageRules) Changed(left, right models.Package) []string {
	var changed []string
	if !left.Version.Equal(right.Version) {
		changed = append(changed, models.FieldVersion)
	}
	if !left.Created.Equal(right.Created) {
		changed = append(changed, models.FieldCreated)
	}
	if !left.Size.Equal(right.Size) {
		changed = append(changed, models.FieldSize)
	}
	if !left.Installed.Equal(right.Installed) {
		changed = append(changed, models.FieldInstalled)
	}
	return changed
}

// Row implements Rules
func (PackageRules) Row(p Pair[models.Package], changed []string) models.DiffRecord {
	var d models.DiffRecord

	switch p.Side {
	case SideLeftOnly:
		d.Status = models.StatusOnlyInFirst
		d.Name, d.SymbolicName = p.Left.Name.Text(), p.Left.Group.Display()
	case SideRightOnly:
		d.Status = models.StatusOnlyInSecond
		d.Name, d.SymbolicName = p.Right.Name.Text(), p.Right.Group.Display()
	default:
		d.Status = models.StatusDifferent
		d.Name, d.SymbolicName = p.Left.Name.Text(), p.Left.Group.Display()
		d.Changed = changed
	}

	if p.Side != SideRightOnly {
		d.Version1 = p.Left.Version.Display()
		d.Created1 = FormatDate(p.Left.Created.Display())
		d.Size1 = FormatSize(p.Left.Size.Text())
		d.State1 = formatInstalled(p.Left.Installed.Truthy())
	}
	if p.Side != SideLeftOnly {
		d.Version2 = p.Right.Version.Display()
		d.Created2 = FormatDate(p.Right.Created.Display())
		d.Size2 = FormatSize(p.Right.Size.Text())
		d.State2 = formatInstalled(p.Right.Installed.Truthy())
	}
	return d
}
