package randomize

import (
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestSettings returns the name of the settings file in dir nearest to
// want by edit distance, or "" when the directory holds none. Used purely to
// make the "no configuration found" message actionable.
func closestSettings(dir, want string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	best := ""
	bestDistance := -1
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".rnqs") {
			continue
		}
		d := levenshtein.ComputeDistance(want, name)
		if bestDistance < 0 || d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}
