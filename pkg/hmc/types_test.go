package hmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestResolveType(t *testing.T) {
	tests := []struct {
		name    string
		src     SourceRecord
		set     string
		ctype   string
		subtype *string
	}{
		{
			name:  "Plain spell",
			src:   SourceRecord{Type: "SPELL"},
			set:   "EXPERT1",
			ctype: "Spell",
		},
		{
			name:    "Minion with race",
			src:     SourceRecord{Type: "MINION", Race: strp("BEAST")},
			set:     "EXPERT1",
			ctype:   "Minion",
			subtype: strp("Beast"),
		},
		{
			name:  "Quest",
			src:   SourceRecord{Type: "SPELL", Mechanics: []string{"QUEST"}},
			set:   "UNGORO",
			ctype: "Quest",
		},
		{
			name:    "Secret without race",
			src:     SourceRecord{Type: "SPELL", Mechanics: []string{"SECRET"}},
			set:     "EXPERT1",
			ctype:   "Spell",
			subtype: strp("Secret"),
		},
		{
			name:  "Secret among other mechanics is not a Secret subtype",
			src:   SourceRecord{Type: "SPELL", Mechanics: []string{"SECRET", "DISCOVER"}},
			set:   "EXPERT1",
			ctype: "Spell",
		},
		{
			name:  "Death Knight",
			src:   SourceRecord{Type: "HERO", Mechanics: []string{"BATTLECRY"}},
			set:   "ICECROWN",
			ctype: "Death Knight",
		},
		{
			name:  "Hero outside Frozen Throne",
			src:   SourceRecord{Type: "HERO"},
			set:   "HOF",
			ctype: "Hero",
		},
		{
			name:    "Gang card",
			src:     SourceRecord{Type: "MINION", MultiClassGroup: strp("JADE_LOTUS")},
			set:     "GANGS",
			ctype:   "Minion",
			subtype: strp("Lotus"),
		},
		{
			name:    "Gang card keeps its race",
			src:     SourceRecord{Type: "MINION", Race: strp("ELEMENTAL"), MultiClassGroup: strp("JADE_LOTUS")},
			set:     "GANGS",
			ctype:   "Minion",
			subtype: strp("Elemental"),
		},
		{
			name:    "Mechanical is Mech",
			src:     SourceRecord{Type: "MINION", Race: strp("MECHANICAL")},
			set:     "GVG",
			ctype:   "Minion",
			subtype: strp("Mech"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctype, subtype, err := ResolveType(tt.src, tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.ctype, ctype)
			assert.Equal(t, tt.subtype, subtype)
		})
	}
}

func TestResolveType_UnknownGang(t *testing.T) {
	_, _, err := ResolveType(SourceRecord{Type: "MINION", MultiClassGroup: strp("PIRATES")}, "GANGS")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "multi-class group", lookupErr.Table)
	assert.Equal(t, "PIRATES", lookupErr.Key)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Legendary", capitalize("LEGENDARY"))
	assert.Equal(t, "Neutral", capitalize("neutral"))
	assert.Equal(t, "Hero_power", capitalize("HERO_POWER"))
	assert.Equal(t, "", capitalize(""))
}
