// Package cli defines the Cobra commands for both binaries. The fta command
// is a bare pass-through: every argument goes to the analyzer untouched. The
// ftactl tree (run, exec, which, targets, doctor, config, version) is the
// operator's view of the same launcher. Commands only handle flags and output
// formatting and delegate to the launcher package for everything else.
package cli
