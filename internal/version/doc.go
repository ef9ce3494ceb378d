// Package version resolves the previous and next release versions.
//
// The previous version is the highest semantic version among the
// repository's tags that carry the configured tag prefix. The next version
// is either given explicitly or derived by bumping the previous version by
// a level (major, minor, patch).
package version
