// Package replace applies the pre-release search/replace rules to files.
//
// Rules run in configuration order; a later rule sees the output of earlier
// rules touching the same file. Every rule is evaluated before anything is
// written, so an invocation either rewrites all files or none.
//
// Placeholders ({{version}}, {{prev_version}}, {{name}}, {{date}},
// {{tag_name}}) are expanded in both the search pattern and the replacement
// before the pattern is compiled. Replacements use Go regexp semantics,
// including $1 capture references.
package replace
