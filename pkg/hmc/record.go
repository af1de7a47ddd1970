// Package hmc normalizes HearthstoneJSON card records into the rows of the
// Hearthstone Master Collection spreadsheet.
package hmc

import "strings"

// Version returns the current version of the package.
func Version() string { return "0.2.0" }

// SourceRecord is one card as found in cards.collectible.json. Pointer and
// slice fields are nil when the key is absent from the export.
type SourceRecord struct {
	Cost            *int
	Name            string
	Rarity          string
	Set             *string
	CardClass       string
	Type            string
	Race            *string
	Mechanics       []string
	ReferencedTags  []string
	MultiClassGroup *string
	Attack          *int
	Health          *int
	CollectionText  *string
	Text            *string

	// Raw is the original JSON object, kept for error messages.
	Raw string
}

// Record is one HMC row. Pointer fields are the optional columns and are nil
// when the card has no value for them.
type Record struct {
	Mana       int
	Name       string
	Rarity     string
	Collection string
	Class      string
	Type       string
	SubType    *string
	Attack     *int
	Health     *int
	CardText   *string
	Keywords   *string
	Format     string

	RarityOrder     int // #Rarity
	CollectionOrder int // #Collection
	ClassOrder      int // #Class
}

// Normalizer converts source records into HMC records. The zero value is not
// usable; get one from NewNormalizer or DefaultNormalizer.
type Normalizer struct {
	standard map[string]struct{}
}

// NewNormalizer returns a Normalizer treating the given Collections as
// Standard. Every name must be the Collection of a registered set.
func NewNormalizer(standard []string) (*Normalizer, error) {
	n := &Normalizer{standard: make(map[string]struct{}, len(standard))}
	for _, name := range standard {
		if !IsCollection(name) {
			return nil, &LookupError{Table: "collection", Key: name}
		}
		n.standard[name] = struct{}{}
	}
	return n, nil
}

// DefaultNormalizer uses the built-in Standard rotation.
func DefaultNormalizer() *Normalizer {
	n, err := NewNormalizer(DefaultStandard)
	if err != nil {
		panic(err)
	}
	return n
}

// Format returns "Standard" or "Wild" for an HMC Collection name.
func (n *Normalizer) Format(collection string) string {
	if _, ok := n.standard[collection]; ok {
		return FormatStandard
	}
	return FormatWild
}

// Normalize converts one card. Any failure is returned as a *RecordError.
func (n *Normalizer) Normalize(src SourceRecord) (Record, error) {
	rec, err := n.normalize(src)
	if err != nil {
		return Record{}, &RecordError{Name: src.Name, Raw: src.Raw, Err: err}
	}
	return rec, nil
}

func (n *Normalizer) normalize(src SourceRecord) (Record, error) {
	var rec Record

	if src.Cost == nil {
		return rec, &MissingFieldError{Field: "cost"}
	}
	rec.Mana = *src.Cost
	if err := checkASCII("name", src.Name); err != nil {
		return rec, err
	}
	rec.Name = src.Name

	// HMC has no Free rarity; those cards are Basic.
	rec.Rarity = capitalize(src.Rarity)
	if rec.Rarity == "Free" {
		rec.Rarity = "Basic"
	}

	setID := FallbackSet
	if src.Set != nil {
		setID = *src.Set
	}
	info, err := LookupSet(setID)
	if err != nil {
		return rec, err
	}
	rec.Collection = info.Name
	rec.Format = n.Format(info.Name)

	rec.Class = capitalize(src.CardClass)

	rec.Type, rec.SubType, err = ResolveType(src, setID)
	if err != nil {
		return rec, err
	}

	rec.Attack = copyInt(src.Attack)
	rec.Health = copyInt(src.Health)

	text := src.CollectionText
	if text == nil {
		text = src.Text
	}
	if text != nil {
		t := NormalizeText(*text)
		if err := checkASCII("card text", t); err != nil {
			return rec, err
		}
		rec.CardText = &t
	}

	// Keep the separator between entries only, never trailing.
	if kws := ExtractKeywords(src); len(kws) > 0 {
		joined := strings.Join(kws, "; ")
		rec.Keywords = &joined
	}

	if rec.RarityOrder, err = RarityOrder(rec.Rarity); err != nil {
		return rec, err
	}
	rec.CollectionOrder = info.Order
	if rec.ClassOrder, err = ClassOrder(rec.Class); err != nil {
		return rec, err
	}
	return rec, nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Normalize converts one card with the default Standard rotation.
func Normalize(src SourceRecord) (Record, error) {
	return DefaultNormalizer().Normalize(src)
}
