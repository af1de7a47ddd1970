// Package cards reads card exports from HearthstoneJSON.
package cards

import (
	"fmt"
	"os"

	"github.com/sphaleron/json2hmc/pkg/hmc"
	"github.com/tidwall/gjson"
)

// Load reads a cards.collectible.json file.
func Load(path string) ([]hmc.SourceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse decodes a JSON array of card objects. Keys missing from a card stay
// nil in the returned record.
func Parse(data []byte) ([]hmc.SourceRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of cards, got %s", doc.Type)
	}

	var (
		records []hmc.SourceRecord
		perr    error
	)
	doc.ForEach(func(_, card gjson.Result) bool {
		if !card.IsObject() {
			perr = fmt.Errorf("card %d: expected an object, got %s", len(records), card.Type)
			return false
		}
		records = append(records, parseCard(card))
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return records, nil
}

func parseCard(card gjson.Result) hmc.SourceRecord {
	return hmc.SourceRecord{
		Cost:            optInt(card, "cost"),
		Name:            card.Get("name").String(),
		Rarity:          card.Get("rarity").String(),
		Set:             optString(card, "set"),
		CardClass:       card.Get("cardClass").String(),
		Type:            card.Get("type").String(),
		Race:            optString(card, "race"),
		Mechanics:       stringList(card, "mechanics"),
		ReferencedTags:  stringList(card, "referencedTags"),
		MultiClassGroup: optString(card, "multiClassGroup"),
		Attack:          optInt(card, "attack"),
		Health:          optInt(card, "health"),
		CollectionText:  optString(card, "collectionText"),
		Text:            optString(card, "text"),
		Raw:             card.Raw,
	}
}

func optString(card gjson.Result, key string) *string {
	v := card.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}

func optInt(card gjson.Result, key string) *int {
	v := card.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	i := int(v.Int())
	return &i
}

func stringList(card gjson.Result, key string) []string {
	v := card.Get(key)
	if !v.Exists() {
		return nil
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, item.String())
	}
	return out
}
