package hmc

import "sort"

// SetInfo is the HMC view of a source set: its Collection name and the
// value of the #Collection column.
type SetInfo struct {
	Name  string
	Order int
}

// FallbackSet is used for cards that come without a "set" field. Cards moved
// to Hall of Fame after Kobolds lost the field in the export.
const FallbackSet = "HOF"

// Format labels.
const (
	FormatStandard = "Standard"
	FormatWild     = "Wild"
)

// JSON set id -> HMC Collection and #Collection.
var sets = map[string]SetInfo{
	"HOF":          {"Promo", -1}, // Hall of Fame is Promo in HMC
	"CORE":         {"Basic", 0},
	"EXPERT1":      {"Classic", 1},
	"NAXX":         {"Naxx", 2},
	"GVG":          {"GvG", 3},
	"BRM":          {"Blackrock", 4},
	"TGT":          {"TGT", 5},
	"LOE":          {"LoE", 6},
	"OG":           {"TOG", 7},
	"KARA":         {"Kara", 8},
	"GANGS":        {"MSG", 9},
	"UNGORO":       {"Un'Goro", 10},
	"ICECROWN":     {"KFT", 11},
	"LOOTAPALOOZA": {"KAC", 12},
}

// Orderings for the #Rarity and #Class columns.
var (
	rarities = []string{"Basic", "Common", "Rare", "Epic", "Legendary"}
	classes  = []string{"", "Druid", "Hunter", "Mage", "Paladin", "Priest", "Rogue", "Shaman", "Warlock", "Warrior", "Neutral"}
)

// DefaultStandard lists the Collections in the Standard rotation at the time
// of Kobolds & Catacombs. Update it, or override it from config, on rotation.
var DefaultStandard = []string{"TOG", "Kara", "MSG", "Un'Goro", "KFT", "KAC"}

type keyword struct {
	label string
	// referenced means the tag also counts when it only shows up in
	// referencedTags.
	referenced bool
}

var keywords = map[string]keyword{
	"AURA":          {"Aura", false},
	"BATTLECRY":     {"Battlecry", false},
	"CANT_ATTACK":   {"Can't Attack", false},
	"CHARGE":        {"Charge", false},
	"CHOOSE_ONE":    {"Choose One", false},
	"COMBO":         {"Combo", false},
	"DEATHRATTLE":   {"Deathrattle", false},
	"DISCOVER":      {"Discover", false},
	"DIVINE_SHIELD": {"Divine Shield", false},
	"ENRAGED":       {"Enrage", false},
	"INSPIRE":       {"Inspire", false},
	"LIFESTEAL":     {"Lifesteal", false},
	"OVERLOAD":      {"Overload", false},
	"POISONOUS":     {"Poisonous", false},
	"RECRUIT":       {"Recruit", true}, // only ever appears in referencedTags
	"SECRET":        {"Secret", false},
	"SPELLPOWER":    {"Spell Damage", false},
	"STEALTH":       {"Stealth", false},
	"TAUNT":         {"Taunt", false},
	"WINDFURY":      {"Windfury", false},
}

// Mean Streets of Gadgetzan gangs. Revisit if multi-class cards ever return.
var multiClassGroups = map[string]string{
	"GRIMY_GOONS": "Goon",
	"KABAL":       "Kabal",
	"JADE_LOTUS":  "Lotus",
}

// LookupSet returns the registry entry for a source set id.
func LookupSet(id string) (SetInfo, error) {
	info, ok := sets[id]
	if !ok {
		return SetInfo{}, &LookupError{Table: "set", Key: id}
	}
	return info, nil
}

// SetIDs returns all registered set ids ordered by #Collection.
func SetIDs() []string {
	ids := make([]string, 0, len(sets))
	for id := range sets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return sets[ids[i]].Order < sets[ids[j]].Order
	})
	return ids
}

// IsCollection reports whether name is the Collection name of a registered set.
func IsCollection(name string) bool {
	for _, info := range sets {
		if info.Name == name {
			return true
		}
	}
	return false
}

// RarityOrder returns the #Rarity value of an HMC rarity.
func RarityOrder(rarity string) (int, error) {
	return indexOf("rarity", rarities, rarity)
}

// ClassOrder returns the #Class value of an HMC class.
func ClassOrder(class string) (int, error) {
	return indexOf("class", classes, class)
}

func indexOf(table string, list []string, v string) (int, error) {
	for i, s := range list {
		if s == v {
			return i, nil
		}
	}
	return 0, &LookupError{Table: table, Key: v}
}
