package team

import "strings"

// Team is a Superliga club as shown in standings and fixtures.
type Team struct {
	Name  string
	Short string
}

// Known clubs with every name variant the paste formats produce, longest
// first so "FC Midtjylland" strips before "Midtjylland".
var Known = []Team{
	{Name: "FC Midtjylland", Short: "FCM"},
	{Name: "FC København", Short: "FCK"},
	{Name: "FC Nordsjælland", Short: "FCN"},
	{Name: "FC Fredericia", Short: "FCF"},
	{Name: "Brøndby IF", Short: "BIF"},
	{Name: "Silkeborg IF", Short: "SIF"},
	{Name: "Randers FC", Short: "RFC"},
	{Name: "Viborg FF", Short: "VFF"},
	{Name: "Vejle Boldklub", Short: "VB"},
	{Name: "Lyngby BK", Short: "LBK"},
	{Name: "AC Horsens", Short: "ACH"},
	{Name: "SønderjyskE", Short: "SJF"},
	{Name: "Midtjylland", Short: "FCM"},
	{Name: "København", Short: "FCK"},
	{Name: "Nordsjælland", Short: "FCN"},
	{Name: "Fredericia", Short: "FCF"},
	{Name: "Brøndby", Short: "BIF"},
	{Name: "Silkeborg", Short: "SIF"},
	{Name: "Randers", Short: "RFC"},
	{Name: "Viborg", Short: "VFF"},
	{Name: "Vejle", Short: "VB"},
	{Name: "Lyngby", Short: "LBK"},
	{Name: "Horsens", Short: "ACH"},
	{Name: "AGF", Short: "AGF"},
	{Name: "AaB", Short: "AaB"},
	{Name: "OB", Short: "OB"},
}

// aliases maps every known spelling of a club, Danish and transliterated, to
// its canonical short code. Keys are lower-case.
var aliases = map[string]string{
	"fc midtjylland":   "FCM",
	"midtjylland":      "FCM",
	"fcm":              "FCM",
	"fc københavn":     "FCK",
	"fc kobenhavn":     "FCK",
	"københavn":        "FCK",
	"copenhagen":       "FCK",
	"fck":              "FCK",
	"brøndby":          "BIF",
	"brondby":          "BIF",
	"brøndby if":       "BIF",
	"bif":              "BIF",
	"agf":              "AGF",
	"aarhus":           "AGF",
	"ob":               "OB",
	"odense":           "OB",
	"odense boldklub":  "OB",
	"fc nordsjælland":  "FCN",
	"fc nordsjaelland": "FCN",
	"nordsjælland":     "FCN",
	"fcn":              "FCN",
	"aab":              "AaB",
	"aalborg":          "AaB",
	"silkeborg":        "SIF",
	"silkeborg if":     "SIF",
	"sif":              "SIF",
	"viborg":           "VFF",
	"viborg ff":        "VFF",
	"vff":              "VFF",
	"randers":          "RFC",
	"randers fc":       "RFC",
	"rfc":              "RFC",
	"vejle":            "VB",
	"vejle boldklub":   "VB",
	"vb":               "VB",
	"lyngby":           "LBK",
	"lyngby bk":        "LBK",
	"lbk":              "LBK",
	"sønderjyske":      "SJF",
	"sonderjyske":      "SJF",
	"sjf":              "SJF",
	"fc fredericia":    "FCF",
	"fredericia":       "FCF",
	"fcf":              "FCF",
	"horsens":          "ACH",
	"ac horsens":       "ACH",
}

// ShortCode resolves a free-form club name to its canonical short code.
// Unknown names fall back to the first three characters upper-cased, so the
// function is total and never fails on noisy input.
func ShortCode(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if code, ok := aliases[normalized]; ok {
		return code
	}

	fallback := []rune(strings.TrimSpace(raw))
	if len(fallback) > 3 {
		fallback = fallback[:3]
	}
	return strings.ToUpper(string(fallback))
}
