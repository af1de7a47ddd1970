package hmc

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tags and values the type rules key on.
const (
	tagQuest  = "QUEST"
	tagSecret = "SECRET"

	// Knights of the Frozen Throne introduced Death Knight heroes; the
	// export marks them as plain heroes.
	deathKnightSet = "ICECROWN"
)

// capitalize upper-cases the first letter and lower-cases the rest, so
// "LEGENDARY" becomes "Legendary".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(s[size:])
}

// ResolveType derives the HMC Type and Sub-Type of a card. Some HMC values
// live in race or mechanics in the export, and a few need special casing.
// setID is the card's set after the fallback has been applied.
func ResolveType(src SourceRecord, setID string) (string, *string, error) {
	ctype := capitalize(src.Type)
	var subtype *string
	set := func(v string) { subtype = &v }

	if src.Race != nil {
		set(capitalize(*src.Race))
	}

	if isOnly(src.Mechanics, tagQuest) {
		ctype = "Quest"
	}
	if isOnly(src.Mechanics, tagSecret) {
		set("Secret")
	}

	if ctype == "Hero" && setID == deathKnightSet {
		ctype = "Death Knight"
	}

	// Gang cards keep a race when they have one (e.g. Jade elementals).
	if src.MultiClassGroup != nil && subtype == nil {
		gang, ok := multiClassGroups[*src.MultiClassGroup]
		if !ok {
			return "", nil, &LookupError{Table: "multi-class group", Key: *src.MultiClassGroup}
		}
		set(gang)
	}

	if subtype != nil && *subtype == "Mechanical" {
		set("Mech")
	}
	return ctype, subtype, nil
}

func isOnly(tags []string, tag string) bool {
	return len(tags) == 1 && tags[0] == tag
}
