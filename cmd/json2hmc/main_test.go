package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/cards.collectible.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRoot_CSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "collection.csv")
	_, err := execute(t, "-i", fixture, "-o", out, "--log-level", "error")
	require.NoError(t, err)

	rows := readCSV(t, out)
	require.Len(t, rows, 9) // header + 8 cards, the hero portrait is skipped

	byName := map[string][]string{}
	for _, r := range rows[1:] {
		byName[r[2]] = r
	}
	assert.Equal(t, "Death Knight", byName["Shadowreaper Anduin"][10])
	assert.Equal(t, "Promo", byName["Azure Drake"][4])
	assert.Equal(t, "Spell Damage +1. Battlecry: Draw a card.", byName["Azure Drake"][14])
	assert.Equal(t, "Recruit", byName["Guild Recruiter"][15])
	assert.Equal(t, "Deathrattle", byName["Mad Scientist"][15])
	assert.Equal(t, "Secret", byName["Freezing Trap"][11])
	assert.Equal(t, "Lotus", byName["Jade Idol"][11])
	assert.Equal(t, "Basic", byName["Arcane Missiles"][3])
}

func TestRoot_SetFilter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "collection.csv")
	_, err := execute(t, "-i", fixture, "-o", out, "-s", "KFT,KAC", "--log-level", "error")
	require.NoError(t, err)

	rows := readCSV(t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, "Shadowreaper Anduin", rows[1][2])
	assert.Equal(t, "Guild Recruiter", rows[2][2])
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "collection.csv")
	cfgPath := filepath.Join(dir, "json2hmc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sets: [Classic]\nstandard: [Classic]\nlog_level: error\n"), 0o644))

	_, err := execute(t, "-c", cfgPath, "-i", fixture, "-o", out)
	require.NoError(t, err)

	rows := readCSV(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "Freezing Trap", rows[1][2])
	assert.Equal(t, "Standard", rows[1][16])
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"Missing input", []string{"-i", filepath.Join(dir, "missing.json"), "-o", filepath.Join(dir, "a.csv")}},
		{"Unknown format", []string{"-i", fixture, "-o", filepath.Join(dir, "a.ods")}},
		{"Unknown collection", []string{"-i", fixture, "-o", filepath.Join(dir, "a.csv"), "-s", "ICECROWN"}},
		{"Stray argument", []string{"cards.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "--log-level", "error")...)
			assert.Error(t, err)
		})
	}
}

func TestSetsCmd(t *testing.T) {
	out, err := execute(t, "sets")
	require.NoError(t, err)
	assert.Contains(t, out, "ICECROWN")
	assert.Contains(t, out, "KFT")
	assert.Contains(t, out, "Standard")

	out, err = execute(t, "sets", "--standard", "Classic")
	require.NoError(t, err)
	assert.Regexp(t, `EXPERT1\s+Classic\s+1\s+Standard`, out)
	assert.Regexp(t, `ICECROWN\s+KFT\s+11\s+Wild`, out)
}
