/*
Package aggregate computes per-region statistics from survey records.

# Statistics

	stats := aggregate.ComputeStats(records, "Praha")
	all := aggregate.ComputeAllStats(records, []string{"Praha", "Brno-město"})

Regions are matched on NormalizeKey (case-folded, diacritics stripped), so
"PRAHA" and "Praha" are the same region. Records without a word or region
are skipped. For each region:

  - Total is the number of matching records
  - Percentages[w] = Counts[w] / Total * 100, empty when Total is 0
  - Dominant is the first word, in first-seen order, with the highest count,
    nil when Total is 0
  - IsTie is set when two or more words share the highest count

Callers showing "who dominates" must check IsTie; Dominant alone only gives
a stable value.

# Precomputed Input

votes.json entries pass through FromPrecomputed, which rederives totals,
percentages and the tie flag from the counts. ToPrecomputed writes the same
shape back, rounded to two decimals.

# Presentation Helpers

  - Summary: word lines by descending count
  - Palette: colour key per region (NeutralKey for no data or ties)
  - Classifier: maps spelling variants ("dyl", "DÝL") to vocabulary words
*/
package aggregate
