package floradex

import "strings"

// FilterInstances narrows already-fetched sightings by a case-insensitive
// substring match on the species' scientific name, its vernacular names,
// the recording user and the description. An empty term returns the input
// unchanged. Missing fields never match but never panic either.
func FilterInstances(instances []Instance, term string) []Instance {
	if term == "" {
		return instances
	}
	needle := strings.ToLower(term)

	filtered := make([]Instance, 0, len(instances))
	for _, inst := range instances {
		if instanceMatches(inst, needle) {
			filtered = append(filtered, inst)
		}
	}
	return filtered
}

func instanceMatches(inst Instance, needle string) bool {
	if containsFold(inst.UserID, needle) || containsFold(inst.Description, needle) {
		return true
	}
	if inst.Species == nil {
		return false
	}
	if containsFold(inst.Species.ScientificName, needle) {
		return true
	}
	for _, v := range inst.Species.VernacularNames {
		if containsFold(v.Name, needle) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains needle ignoring case. The needle
// is already lowercased by the caller.
func containsFold(s, needle string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), needle)
}
