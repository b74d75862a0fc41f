/*
Dialectctl prepares and inspects survey data offline.

Usage:

	dialectctl [--vocab file] [--log-level level] <command> [flags] [args]

Commands:

	aggregate   --records answers.csv --out votes.json
	import      --records answers.xlsx -t sqlite -d okresy.db
	stats       --votes votes.json [district]
	chart       --votes votes.json --out praha.png Praha
	explore     --votes votes.json
	admin-key   --salt $ADMIN_KEY_SALT

Commands that read data take either --votes or --records. explore reads one
command per line from stdin:

	hover Praha
	select Brno-město
	leave
	reset
	quit
*/
package main
