package transfer

import (
	"fmt"
)

// DestinationResult is the outcome of syncing one destination
type DestinationResult struct {
	Destination string
	Files       int
	// Skipped is set when the command was only logged
	Skipped bool
	Err     error
}

// Stats summarises one system's transfer
type Stats struct {
	System       string
	Destinations []DestinationResult
	Files        int
	Failed       int
	// Err is set when the system could not be planned at all
	Err error
}

func (s *Stats) add(r DestinationResult) {
	s.Destinations = append(s.Destinations, r)
	s.Files += r.Files
	if r.Err != nil {
		s.Failed++
	}
}

// OK reports whether every destination succeeded
func (s Stats) OK() bool {
	return s.Failed == 0 && s.Err == nil
}

func (s Stats) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%s: %v", s.System, s.Err)
	}
	return fmt.Sprintf("%s: %d files to %d destinations, %d failed",
		s.System, s.Files, len(s.Destinations), s.Failed)
}
