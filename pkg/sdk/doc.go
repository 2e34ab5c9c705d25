// Package floradex provides a Go client for the floradex biodiversity
// cataloging service: taxonomy search, taxon details, and georeferenced
// sighting records.
//
// # Basic usage
//
//	client := floradex.New(floradex.WithBaseURL("http://localhost:8080"))
//	taxons, _ := client.SearchTaxons(ctx, floradex.TaxonQuery{Text: "araucaria"})
//	inst, _ := client.CreateInstance(ctx, floradex.NewInstance{
//	    Location: &floradex.Point{Lat: -29.717, Lon: -53.715},
//	    Species:  &taxons[0],
//	})
//
// # Search-as-you-type
//
// FetchController debounces keystrokes and discards stale responses, so a
// slow query can never overwrite the results of a newer one:
//
//	ctrl := floradex.NewFetchController(
//	    func(ctx context.Context, q string) ([]floradex.Taxon, error) {
//	        return client.SearchTaxons(ctx, floradex.TaxonQuery{Text: q})
//	    },
//	    func(q string, taxons []floradex.Taxon, err error) {
//	        // update the view
//	    },
//	)
//	ctrl.Request(ctx, "ara")
//	ctrl.Request(ctx, "arau") // restarts the quiet period
package floradex
