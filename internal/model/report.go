package model

// Entry is one collected node in a report, reduced to what the presentation
// layer needs.
type Entry struct {
	Name     string `yaml:"name"`
	Tag      string `yaml:"tag"`
	Detail   string `yaml:"detail,omitempty"`
	Verified bool   `yaml:"verified"`
}

// Report is the serializable outcome of one finder session over one graph.
type Report struct {
	Graph           string  `yaml:"graph"`
	Module          string  `yaml:"module"`
	CompileUnits    []Entry `yaml:"compile_units"`
	Subprograms     []Entry `yaml:"subprograms"`
	GlobalVariables []Entry `yaml:"global_variables"`
	Types           []Entry `yaml:"types"`
	Scopes          []Entry `yaml:"scopes"`
}

// TotalEntries returns the number of entries across all five collections.
func (r Report) TotalEntries() int {
	return len(r.CompileUnits) + len(r.Subprograms) + len(r.GlobalVariables) +
		len(r.Types) + len(r.Scopes)
}

// Malformed returns the entries that failed verification, in report order.
func (r Report) Malformed() []Entry {
	var bad []Entry

	for _, group := range [][]Entry{
		r.CompileUnits, r.Subprograms, r.GlobalVariables, r.Types, r.Scopes,
	} {
		for _, e := range group {
			if !e.Verified {
				bad = append(bad, e)
			}
		}
	}

	return bad
}
