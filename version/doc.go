// Package version reports build metadata for hashsum.
//
// Values come from variables injected at link time:
//
//	-ldflags "-X github.com/dendrascience/dendra-hashsum/version.Version=v1.0.0 -X github.com/dendrascience/dendra-hashsum/version.Commit=abc123"
//
// and fall back to the module and VCS information recorded by the Go
// toolchain, then to development defaults.
package version
