package db

// Clause is one node of a store query, marshaled verbatim into the search
// request body.
type Clause map[string]any

// MatchAll matches every document in the index.
func MatchAll() Clause {
	return Clause{"match_all": map[string]any{}}
}

// Match is a full-text match on a single field with default weight.
func Match(field, value string) Clause {
	return Clause{"match": map[string]any{field: value}}
}

// MatchBoost is a full-text match on a single field with an explicit
// relevance weight.
func MatchBoost(field, value string, boost float64) Clause {
	return Clause{"match": map[string]any{
		field: map[string]any{
			"query": value,
			"boost": boost,
		},
	}}
}

// Nested scopes a query to single elements of a nested-array field.
func Nested(path string, query Clause) Clause {
	return Clause{"nested": map[string]any{
		"path":  path,
		"query": query,
	}}
}

// Should is a disjunction of clauses requiring at least minimumShouldMatch
// of them to hit. Clause order is preserved in the request body.
func Should(minimumShouldMatch int, clauses ...Clause) Clause {
	return Clause{"bool": map[string]any{
		"should":               clauses,
		"minimum_should_match": minimumShouldMatch,
	}}
}

// GeoBoundingBox constrains a geo-point field to a rectangle given by its
// top-left and bottom-right corners.
func GeoBoundingBox(field string, topLeftLat, topLeftLon, bottomRightLat, bottomRightLon float64) Clause {
	return Clause{"geo_bounding_box": map[string]any{
		field: map[string]any{
			"top_left": map[string]any{
				"lat": topLeftLat,
				"lon": topLeftLon,
			},
			"bottom_right": map[string]any{
				"lat": bottomRightLat,
				"lon": bottomRightLon,
			},
		},
	}}
}
