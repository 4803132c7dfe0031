package discover

// Providers maps streaming provider ids to display names. The id doubles as
// the category slug for the provider's rail.
var Providers = map[string]string{
	"8":    "Netflix",
	"337":  "Disney+",
	"9":    "Amazon Prime Video",
	"453":  "Hulu",
	"1899": "Max",
	"2552": "Apple TV+",
}
