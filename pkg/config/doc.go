/*
Package config holds the configuration of a rename run and reads it from
YAML, HCL, JSON or TOML files.

🎯 Fields:

	root       directory to scan (default ".")
	recursive  descend into subdirectories
	folders    also rename directories
	verbose    print one line per matched entry
	pattern    regular expression (RE2 syntax), required
	template   name template with $(i) placeholders, required
	exclude    doublestar globs of entries to leave alone

🔍 Discovery:
Without an explicit path, the first of .rxrename.{yaml,yml,hcl,json,toml} in
the working directory is used, then rxrename/config.{yaml,yml,hcl,json,toml}
under the XDG config directories.

📝 Example (.rxrename.yaml):

	recursive: true
	pattern: '^(\w+)_(\d{4})_(\d{2})\.txt$'
	template: '$(1)-$(2)-$(3).txt'
	exclude:
	  - ".git"
	  - "vendor"

📝 Example (.rxrename.hcl):

	recursive = true
	pattern   = "^IMG_(\\d+)\\.JPG$"
	template  = "photo-$(1).jpg"
	root      = env.PHOTO_DIR

Files are decoded strictly: unknown keys are errors. Load does not validate,
because pattern and template are often given on the command line; call
Validate once everything is merged.
*/
package config
