// Package domain holds the catalog entities and sentinel errors shared by
// all layers.
package domain

// VernacularName is a common name for a taxon in a given language.
type VernacularName struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// HigherClassification is the taxonomic hierarchy above the taxon itself.
// All ranks are optional; the catalog is not uniformly classified.
type HigherClassification struct {
	Kingdom string `json:"kingdom,omitempty"`
	Phylum  string `json:"phylum,omitempty"`
	Class   string `json:"class,omitempty"`
	Order   string `json:"order,omitempty"`
	Family  string `json:"family,omitempty"`
	Genus   string `json:"genus,omitempty"`
}

// Distribution records where a taxon occurs and how it got there.
type Distribution struct {
	LocationID         string `json:"locationID,omitempty"`
	EstablishmentMeans string `json:"establishmentMeans,omitempty"`
}

// Sinonym is an alternative scientific name for a taxon.
// The field name matches the catalog's index mapping.
type Sinonym struct {
	ScientificName  string `json:"scientificName,omitempty"`
	TaxonomicStatus string `json:"taxonomicStatus,omitempty"`
}

// Taxon is a single entry of the taxonomy catalog. Read-only from this
// system's point of view; the catalog is maintained out-of-band.
type Taxon struct {
	ID                   string                `json:"id"`
	ScientificName       string                `json:"scientificName"`
	TaxonRank            string                `json:"taxonRank,omitempty"`
	HigherClassification *HigherClassification `json:"higherClassification,omitempty"`
	VernacularNames      []VernacularName      `json:"vernacularNames,omitempty"`
	Distribution         []Distribution        `json:"distribution,omitempty"`
	Sinonyms             []Sinonym             `json:"sinonyms,omitempty"`
	TaxonomicStatus      string                `json:"taxonomicStatus,omitempty"`
	AcceptedNameUsageID  string                `json:"acceptedNameUsageID,omitempty"`
}

// TaxonFilters restricts a taxon search. Empty fields mean no constraint.
type TaxonFilters struct {
	Family     string
	Genus      string
	LocationID string
}

// IsEmpty reports whether no filter is set.
func (f TaxonFilters) IsEmpty() bool {
	return f.Family == "" && f.Genus == "" && f.LocationID == ""
}
