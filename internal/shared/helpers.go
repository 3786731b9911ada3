// Package shared provides common utility functions used across multiple
// packages in the osa-filters codebase.
package shared

import (
	"sort"
	"strings"
)

// LowerSet folds every entry of the list to lower case and collapses
// duplicates into a set keyed by the folded value.
func LowerSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, item := range list {
		out[strings.ToLower(item)] = struct{}{}
	}
	return out
}

// SortedKeys returns the keys of a string set in ascending order.
func SortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
