// Package request reads and rewrites the downloads file.
//
// The file is CSV-like UTF-8 text, one record per line:
//
//	Name, tier[, enchant[, quality]]
//	# comments and blank lines are ignored
//
// Parse splits one line into a ParsedLine without validating ranges;
// optional fields stay FieldUnset so the resolver can default them
// after the item identifier is known.
//
// Rewrite compacts the file after a run, keeping only the lines the
// fetch loop chose to retain. The replacement is atomic (temp file +
// rename) per the transactional-compaction design.
package request
