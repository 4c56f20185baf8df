package repository

import "strings"

// joinIDs flattens a dependency ID list for storage. IDs never contain
// commas (the importer splits on them), so a plain join round-trips.
func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// splitIDs reverses joinIDs. An empty column yields a nil slice, not [""].
func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
