package util

import (
	"fmt"

	"holdem/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Lucky", "Steady", "Bluffing", "Quiet", "Loose", "Tight", "Grand", "Fuzzy",
	"Smiling", "Sly", "Patient", "Reckless", "Cautious", "Jumping", "Prime", "Happy",
}

var animals = []string{
	"Fish", "Shark", "Whale", "Otter", "Fox", "Wolf", "Panda", "Okapi", "Hedgehog", "Lion",
	"Tiger", "Bear", "Eagle", "Mandrill", "Rhino", "Gerbil", "Muskrat", "Armadillo",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}

// GetRandomNames returns n distinct random names
// Seat names must be unique at a table, so duplicates get a numeric suffix.
func GetRandomNames(gen rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(names) < n {
		base := GetRandomName(gen)
		name := base
		for i := 2; seen[name]; i++ {
			name = fmt.Sprintf("%s %d", base, i)
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
