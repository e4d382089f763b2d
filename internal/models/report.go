package models

// InputSummary describes one side of a comparison
type InputSummary struct {
	Path        string `json:"path" yaml:"path"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	Count       int    `json:"count" yaml:"count"`
}

// Summary counts diff records per status
type Summary struct {
	OnlyInFirst  int `json:"onlyInFirst" yaml:"onlyInFirst"`
	OnlyInSecond int `json:"onlyInSecond" yaml:"onlyInSecond"`
	Different    int `json:"different" yaml:"different"`
}

// Report is the full result of one comparison handed to a renderer
type Report struct {
	Variant     Variant      `json:"variant" yaml:"variant"`
	Left        InputSummary `json:"left" yaml:"left"`
	Right       InputSummary `json:"right" yaml:"right"`
	Summary     Summary      `json:"summary" yaml:"summary"`
	Differences []DiffRecord `json:"differences" yaml:"differences"`
}

// Summarize counts the records per status
func Summarize(records []DiffRecord) Summary {
	var s Summary
	for i := range records {
		switch records[i].Status {
		case StatusOnlyInFirst:
			s.OnlyInFirst++
		case StatusOnlyInSecond:
			s.OnlyInSecond++
		case StatusDifferent:
			s.Different++
		}
	}
	return s
}
