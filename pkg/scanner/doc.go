// Package scanner lists the ROM files under a system's local directory.
//
// The filesystem is an afero.Fs so tests can run against an in-memory tree.
package scanner
