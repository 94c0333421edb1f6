package dtpattern

// Name alternations are tried in order and the first hit wins. Full names come
// before their abbreviations so that "january" is never cut short by "jan".
var (
	eraNames  = []string{"ad", "bc"}
	ampmNames = []string{"am", "pm"}

	monthNames = []string{
		"january", "jan",
		"february", "feb",
		"march", "mar",
		"april", "apr",
		"may",
		"june", "jun",
		"july", "jul",
		"august", "aug",
		"september", "sep",
		"october", "oct",
		"november", "nov",
		"december", "dec",
	}

	dayNames = []string{
		"sunday", "sun",
		"monday", "mon",
		"tuesday", "tue",
		"wednesday", "wed",
		"thursday", "thu",
		"friday", "fri",
		"saturday", "sat",
	}
)
