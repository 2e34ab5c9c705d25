package floradex

import "time"

// VernacularName is a common name for a taxon in a given language.
type VernacularName struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// HigherClassification is the taxonomic hierarchy above the taxon itself.
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

// Sinonym is an alternative scientific name for a taxon. The spelling
// matches the catalog's index mapping.
type Sinonym struct {
	ScientificName  string `json:"scientificName,omitempty"`
	TaxonomicStatus string `json:"taxonomicStatus,omitempty"`
}

// Taxon is a single entry of the taxonomy catalog.
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

// TaxonQuery holds taxonomy search criteria. Text matches names with
// relevance ranking; the remaining fields are exact filters. The server
// rejects a query with no criterion set.
type TaxonQuery struct {
	Text       string
	Family     string
	Genus      string
	LocationID string
}

// Point is a geographic coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// Instance is a recorded sighting of a taxon at a location.
type Instance struct {
	InstanceID  string    `json:"instance_id"`
	Location    Point     `json:"location"`
	Species     *Taxon    `json:"species"`
	Description string    `json:"description,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
	UserID      string    `json:"user_id,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// NewInstance is the payload for recording a sighting. Location and
// Species are required; the server assigns the id and timestamp.
type NewInstance struct {
	Location    *Point `json:"location"`
	Species     *Taxon `json:"species"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// HealthReport is the /health response body.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
