// Package config defines the format-agnostic configuration model for the
// host, along with the Loader interface for reading it from a file. The
// concrete HCL implementation lives in a separate package.
package config
