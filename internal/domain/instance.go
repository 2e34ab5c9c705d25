package domain

import (
	"time"

	"github.com/smartcampus/floradex/internal/domain/geo"
)

// Instance is a single georeferenced sighting of a taxon. The species is a
// snapshot of the taxon at observation time, not a reference: later catalog
// corrections must not rewrite what was recorded.
type Instance struct {
	InstanceID  string    `json:"instance_id"`
	Location    geo.Point `json:"location"`
	Species     *Taxon    `json:"species"`
	Description string    `json:"description,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
	UserID      string    `json:"user_id,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// NewInstanceInput carries the caller-supplied fields for a new sighting.
type NewInstanceInput struct {
	Location    *geo.Point `json:"location"`
	Species     *Taxon     `json:"species"`
	Description string     `json:"description,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
}

// Validate checks the required sighting fields.
func (in *NewInstanceInput) Validate() error {
	if in.Location == nil || in.Species == nil {
		return ErrValidation
	}
	return nil
}
