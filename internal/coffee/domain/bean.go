// Package domain contains the coffee-shop entities and business rules:
// beans in stock, flavor tags, logged drinks, and the daily report.
package domain

import "strings"

// Bean is a coffee-bean stock-keeping unit. Names are unique across the
// system. Stock is tracked in grams and must never go negative.
type Bean struct {
	ID           int64
	Name         string
	Origin       string
	Roaster      string
	Process      string // washed, natural, etc. May be empty.
	CostPerKg    float64
	GramsInStock float64
}

// Flavor is a tasting-note tag, many-to-many with drinks. Names are unique
// and created lazily the first time a drink references them.
type Flavor struct {
	ID   int64
	Name string
}

// NormalizeFlavorNames trims whitespace, drops empty entries, and removes
// duplicates while preserving first-occurrence order.
func NormalizeFlavorNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// SplitFlavorList splits a comma-separated flavor list into normalized names.
func SplitFlavorList(list string) []string {
	return NormalizeFlavorNames(strings.Split(list, ","))
}
