// Package hcl implements config.Loader for HCL host-configuration files.
package hcl
