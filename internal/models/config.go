package models

// CompareConfig contains configuration for one comparison run
type CompareConfig struct {
	// Input
	LeftPath  string
	RightPath string
	Variant   string

	// Output
	Format     string
	SortField  string
	Order      string
	OutputPath string
	NoColor    bool

	// Signing
	GPGKeyPath    string
	GPGPassphrase string
}
