package chart

// Datum is one labelled value of a chart dataset.
type Datum struct {
	Label string  `json:"label" toml:"label" yaml:"label"`
	Value float64 `json:"value" toml:"value" yaml:"value"`
}

// ValidationResult is the filtered view of a dataset.
type ValidationResult struct {
	Valid []Datum // surviving entries in input order
	Empty bool    // true when nothing survived
}
