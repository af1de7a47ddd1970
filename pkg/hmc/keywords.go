package hmc

import "sort"

// ExtractKeywords returns the sorted, de-duplicated HMC keywords of a card.
//
// Every registered tag in mechanics counts. Tags in referencedTags only count
// when the registry says so, otherwise cards that merely mention Secrets (Mad
// Scientist) would be listed as Secrets themselves.
func ExtractKeywords(src SourceRecord) []string {
	seen := make(map[string]struct{})
	for _, tag := range src.Mechanics {
		if kw, ok := keywords[tag]; ok {
			seen[kw.label] = struct{}{}
		}
	}
	for _, tag := range src.ReferencedTags {
		if kw, ok := keywords[tag]; ok && kw.referenced {
			seen[kw.label] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
