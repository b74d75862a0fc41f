/*
Package dataset loads survey data and district boundaries into one
immutable Dataset and keeps the current one in a Store.

Survey data comes from, in order of preference, a precomputed votes.json
file, a raw CSV/XLSX table, or the survey_response table. Boundaries always
come from a GeoJSON file. Both are read concurrently and the dataset is only
published when both succeed.

	store := dataset.NewStore(src, 5*time.Minute)
	if _, err := store.Reload(ctx); err != nil {
		// Current keeps returning err until a reload succeeds
	}
	stats, err := store.Stats("Brno-město")

A failed reload never replaces a dataset that loaded earlier.
*/
package dataset
