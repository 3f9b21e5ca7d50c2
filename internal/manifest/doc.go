// Package manifest holds the static binary manifest: the table that maps each
// supported target triple to the directory its analyzer binary ships in. The
// manifest is embedded at build time, validated against a JSON schema and
// parsed exactly once; callers only ever see read-only views of it.
package manifest
