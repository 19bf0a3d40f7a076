/*
Package status counts rename outcomes and tells the user about them.

	+-------------+
	|   Status    |
	| (Counting)  |
	+------+------+
	       |
	+------+------+-----------+
	|             |           |
	+-----+----+  +-----+-----+  +----+----+
	|  Totals  |  | Reporter  |  | Warner  |
	| (counts) |  | (stdout)  |  | (stderr)|
	+----------+  +-----------+  +---------+

🎯 Purpose:
- Keeps the matched / renamed / failed counters of one run
- Prints one line per processed entry in verbose mode
- Prints rename failures even when not verbose
- Prints exactly one summary line at the end

📝 Output contract (stdout):

	<old> -> <new>
	<old> unchanged
	<old>: <error>
	<N> files matched, <M> files renamed, <K> errors

where N counts every entry that matched the pattern (matched + renamed +
failed). Entries that did not match are not counted at all.

🤝 Interfaces:
- Formatter: renders lines, DefaultFormatter adds optional color
- Warner: pterm warnings for skipped entries, on stderr

Reporting never changes the counts.
*/
package status
