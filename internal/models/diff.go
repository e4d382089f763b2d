package models

// Status tags a diff record
type Status string

const (
	StatusOnlyInFirst  Status = "Only in First"
	StatusOnlyInSecond Status = "Only in Second"
	StatusDifferent    Status = "Different Values"
)

// Tracked field names
const (
	FieldVersion   = "version"
	FieldState     = "state"
	FieldCreated   = "created"
	FieldSize      = "size"
	FieldInstalled = "installed"
)

// Column keys addressable for sorting and rendering
const (
	KeyName         = "name"
	KeySymbolicName = "symbolicName"
	KeyStatus       = "status"
	KeyVersion1     = "version1"
	KeyState1       = "state1"
	KeyCreated1     = "created1"
	KeySize1        = "size1"
	KeyVersion2     = "version2"
	KeyState2       = "state2"
	KeyCreated2     = "created2"
	KeySize2        = "size2"
)

// DiffRecord is one row of comparison output. Side values are display
// strings and are empty when the record is absent on that side.
type DiffRecord struct {
	Name         string `json:"name" yaml:"name"`
	SymbolicName string `json:"symbolicName" yaml:"symbolicName"`
	Status       Status `json:"status" yaml:"status"`

	Version1 string `json:"version1" yaml:"version1"`
	State1   string `json:"state1" yaml:"state1"`
	Created1 string `json:"created1,omitempty" yaml:"created1,omitempty"`
	Size1    string `json:"size1,omitempty" yaml:"size1,omitempty"`

	Version2 string `json:"version2" yaml:"version2"`
	State2   string `json:"state2" yaml:"state2"`
	Created2 string `json:"created2,omitempty" yaml:"created2,omitempty"`
	Size2    string `json:"size2,omitempty" yaml:"size2,omitempty"`

	// Changed lists the tracked fields that differ; only set for StatusDifferent
	Changed []string `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Value returns the display value for a column key, or "" for unknown keys
func (d *DiffRecord) Value(key string) string {
	switch key {
	case KeyName:
		return d.Name
	case KeySymbolicName:
		return d.SymbolicName
	case KeyStatus:
		return string(d.Status)
	case KeyVersion1:
		return d.Version1
	case KeyState1:
		return d.State1
	case KeyCreated1:
		return d.Created1
	case KeySize1:
		return d.Size1
	case KeyVersion2:
		return d.Version2
	case KeyState2:
		return d.State2
	case KeyCreated2:
		return d.Created2
	case KeySize2:
		return d.Size2
	default:
		return ""
	}
}

// HasChanged reports whether the tracked field was marked as differing
func (d *DiffRecord) HasChanged(field string) bool {
	for _, f := range d.Changed {
		if f == field {
			return true
		}
	}
	return false
}

// IsValidKey reports whether key names a DiffRecord column
func IsValidKey(key string) bool {
	switch key {
	case KeyName, KeySymbolicName, KeyStatus,
		KeyVersion1, KeyState1, KeyCreated1, KeySize1,
		KeyVersion2, KeyState2, KeyCreated2, KeySize2:
		return true
	}
	return false
}
