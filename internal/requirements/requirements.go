// Package requirements implements the pip requirement filters: splitting
// requirement strings into their parts, extracting requirement names,
// and merging constraint lists.
package requirements

import (
	"sort"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"osa-filters/internal/shared"
	"osa-filters/internal/types"
)

// opTokens is the ordered list of version operators tried during
// splitting. Longer tokens must precede shorter ones to avoid false
// matches (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpEq,
	types.ConstraintOpCompat,
	types.ConstraintOpNe,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// Split decomposes a raw requirement string into name, version spec,
// and environment marker. The marker is everything after the first ";".
// The version spec is the matched operator plus the remainder of the
// expression; when no operator is present it is empty. Split never
// fails: garbage in, degenerate fields out.
func Split(raw string) types.Requirement {
	expr := raw
	marker := ""
	if idx := strings.Index(raw, ";"); idx >= 0 {
		expr = raw[:idx]
		marker = raw[idx+1:]
	}
	// The split happens at the first operator occurrence by position;
	// the longest-first token order only breaks ties at the same
	// position, so ">=" never splits as ">".
	split := -1
	for _, op := range opTokens {
		idx := strings.Index(expr, string(op))
		if idx >= 0 && (split < 0 || idx < split) {
			split = idx
		}
	}
	if split < 0 {
		return types.Requirement{Name: expr, Marker: marker}
	}
	return types.Requirement{
		Name:        expr[:split],
		VersionSpec: expr[split:],
		Marker:      marker,
	}
}

// Names returns the sorted set of lower-cased requirement names found
// in the list. Entries with an empty parsed name and comment entries
// (names starting with "#") are skipped.
func Names(reqs []string) []string {
	named := map[string]struct{}{}
	for _, raw := range reqs {
		name := Split(raw).Name
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		named[strings.ToLower(name)] = struct{}{}
	}
	return shared.SortedKeys(named)
}

// Merge applies the version constraints in overrides to base: an
// override with a version spec replaces the same-named base entry, or
// is appended when no base entry matches. Overrides without a version
// spec carry no constraint and are dropped. Both lists are folded to
// lower case before comparison, so the returned entries are lower-case
// as well. The result is sorted ascending.
func Merge(base []string, overrides []string) []string {
	merged := shared.SortedKeys(shared.LowerSet(base))
	for _, override := range shared.SortedKeys(shared.LowerSet(overrides)) {
		req := Split(override)
		if !req.HasVersion() {
			continue
		}
		replaced := false
		for i, existing := range merged {
			if Split(existing).Name == req.Name {
				merged[i] = override
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, override)
		}
	}
	sort.Strings(merged)
	return merged
}

// FilteredList returns the case-insensitive set difference
// listOne - listTwo, lower-cased. The output is produced from a set;
// its ordering is unspecified and callers must not depend on it.
func FilteredList(listOne []string, listTwo []string) []string {
	one := shared.LowerSet(listOne)
	for item := range shared.LowerSet(listTwo) {
		delete(one, item)
	}
	return shared.SortedKeys(one)
}

// ValidateSpec checks a requirement's version spec against PEP 440
// specifier syntax. Requirements without a version spec are valid.
func ValidateSpec(raw string) error {
	req := Split(raw)
	if !req.HasVersion() {
		return nil
	}
	_, err := pep440.NewSpecifiers(req.VersionSpec)
	return err
}
