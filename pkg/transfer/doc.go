// Package transfer pushes a classified plan to its destinations with rsync.
//
// Each destination gets its own rsync invocation fed by a temporary
// --files-from list. Commands go through a Runner so they can be logged
// instead of run (NoRun) or replaced in tests.
package transfer
