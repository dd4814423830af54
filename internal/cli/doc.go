// Package cli parses command-line arguments, validates user input, and
// handles process-level concerns like exit codes. It translates CLI flags
// into the host's internal configuration, leaving unset flags to be filled
// by the configuration file and built-in defaults.
package cli
