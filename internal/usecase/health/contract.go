package health

import "context"

// StorePinger checks document-store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}
