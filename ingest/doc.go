/*
Package ingest reads survey data from disk.

# Raw Records

	records, report, err := ingest.OpenRecords("users_votes_clean.csv", ingest.Options{
		Vocabulary: vocab,
	})

.csv, .txt and .tsv files are read with encoding/csv, .xlsx workbooks with
excelize (first sheet). A header row is recognised by its column names
(word/slovo/odpoved, region/okres/district); otherwise the first two columns
are word and region. Short, blank or unparseable rows are counted as
malformed and skipped; answers outside a closed vocabulary are counted as
unclassified and skipped. Neither fails the read.

# Precomputed Stats

	stats, err := ingest.OpenPrecomputed("data/votes.json")

# Vocabulary

	vocab, err := ingest.LoadVocabulary("vocabulary.yaml")

	words:
	  - word: dýl
	    key: dyl
	    color: "#1f77b4"
	    variants: [dyl]
	neutral_color: "#cccccc"
	name_aliases: [name, NAZEV, okres]
*/
package ingest
