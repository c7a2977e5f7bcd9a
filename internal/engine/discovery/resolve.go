package discovery

import "go.trai.ch/addon/internal/core/domain"

// Resolve returns the names of order present in index, keeping their order.
// A name listed twice is loaded once, at its first position.
func Resolve(index domain.PackageIndex, order []string) []string {
	resolved := make([]string, 0, len(order))
	seen := make(map[string]bool, len(order))

	for _, name := range order {
		if seen[name] {
			continue
		}
		if _, ok := index[name]; !ok {
			continue
		}
		seen[name] = true
		resolved = append(resolved, name)
	}
	return resolved
}

// Unresolved returns the names of order missing from index.
func Unresolved(index domain.PackageIndex, order []string) []string {
	var missing []string
	for _, name := range order {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
