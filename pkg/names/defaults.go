package names

// defaultConfig covers the Caltrain line: informal names, abbreviations and
// common misspellings observed in user input, plus feed spellings that differ
// from conventional usage.
var defaultConfig = Config{
	Aliases: map[string][]string{
		"SAN FRANCISCO": {"SF", "SAN FRAN"},
		"SOUTH SAN FRANCISCO": {
			"S SAN FRANCISCO", "SOUTH SF", "SOUTH SAN FRAN", "S SAN FRAN",
			"S SF", "SO SF", "SO SAN FRANCISCO", "SO SAN FRAN",
		},
		"22ND ST": {
			"TWENTY-SECOND STREET", "TWENTY-SECOND ST", "22ND STREET",
			"22ND", "TWENTY-SECOND", "22",
		},
		"MOUNTAIN VIEW": {"MT VIEW"},
		"CALIFORNIA AVENUE": {
			"CAL AVE", "CALIFORNIA", "CALIFORNIA AVE", "CAL", "CAL AV",
			"CALIFORNIA AV",
		},
		"REDWOOD CITY":      {"REDWOOD"},
		"SAN JOSE DIRIDON":  {"DIRIDON", "SAN JOSE"},
		"COLLEGE PARK":      {"COLLEGE"},
		"BLOSSOM HILL":      {"BLOSSOM"},
		"MORGAN HILL":       {"MORGAN"},
		"HAYWARD PARK":      {"HAYWARD"},
		"MENLO PARK":        {"MENLO"},
	},
	Renames: map[string]string{
		"SO. SAN FRANCISCO": "SOUTH SAN FRANCISCO",
		"S SAN FRANCISCO":   "SOUTH SAN FRANCISCO",
		"MT VIEW":           "MOUNTAIN VIEW",
		"CALIFORNIA AVE":    "CALIFORNIA AVENUE",
	},
}

var defaultTable = NewTable(defaultConfig)

// Default returns the built-in Caltrain table.
func Default() *Table {
	return defaultTable
}
