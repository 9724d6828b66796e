package sync

import "sort"

// Diff returns the names of the fields whose values differ between the
// existing and incoming maps. Only fields present in both maps are compared:
// a field absent from incoming never counts as differing, so partial
// normalization can not overwrite stored values with empties, and a field
// absent from existing is left for the store's schema to default. Comparison
// is exact string equality.
func Diff(existing, incoming map[string]string) []string {
	var changed []string
	for field, incomingValue := range incoming {
		existingValue, ok := existing[field]
		if !ok {
			continue
		}
		if existingValue != incomingValue {
			changed = append(changed, field)
		}
	}
	sort.Strings(changed)
	return changed
}
