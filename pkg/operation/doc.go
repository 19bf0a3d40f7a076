/*
Package operation runs one rename pass over a directory tree.

	+-------------+     +-------------+     +--------------+
	|   Config    | --> |   Walker    | --> |  Classifier  |
	| (validated) |     | (entries)   |     | (match/move) |
	+-------------+     +------+------+     +------+-------+
	                           |                   |
	                     skipped entries        results
	                           |                   |
	                    +------v------+     +------v-------+
	                    |   Warner    |     |   Reporter   |
	                    |  (stderr)   |     |   (stdout)   |
	                    +-------------+     +--------------+

🔄 Flow:
1. Validate the config and compile the pattern
2. Walk the root, children before their directory
3. Classify each entry, renaming when the template output differs
4. Report each result and print the summary

⚡ Fatal errors:
- Missing pattern or template, invalid pattern, invalid exclude glob
- Root directory cannot be listed
- Context cancelled

Everything else (unreadable entries, failed renames) is counted or warned
about and the run goes on.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		FS:       fsys.NewOS(),
		Reporter: status.NewReporter(os.Stdout, cfg.Verbose, nil),
		Warner:   status.NewWarner(os.Stderr),
	})
	if err != nil {
		return err
	}
	totals, err := op.Execute(ctx)
*/
package operation
