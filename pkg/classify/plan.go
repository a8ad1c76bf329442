package classify

import "slices"

// Plan maps destination paths to the files sent there. Destinations keep
// first-seen order.
type Plan struct {
	order []string
	files map[string][]string
}

// NewPlan returns an empty plan
func NewPlan() *Plan {
	return &Plan{files: make(map[string][]string)}
}

// Add appends file to dest, creating the destination on first use
func (p *Plan) Add(dest, file string) {
	if _, ok := p.files[dest]; !ok {
		p.order = append(p.order, dest)
		p.files[dest] = []string{}
	}
	p.files[dest] = append(p.files[dest], file)
}

// Destinations returns the destination paths in first-seen order
func (p *Plan) Destinations() []string {
	return slices.Clone(p.order)
}

// Files returns the files for dest in insertion order
func (p *Plan) Files(dest string) []string {
	return slices.Clone(p.files[dest])
}

// Len returns the number of destinations
func (p *Plan) Len() int {
	return len(p.order)
}

// FileCount returns the number of files across all destinations
func (p *Plan) FileCount() int {
	n := 0
	for _, files := range p.files {
		n += len(files)
	}
	return n
}

// Map returns a copy of the plan as a plain map
func (p *Plan) Map() map[string][]string {
	out := make(map[string][]string, len(p.files))
	for dest, files := range p.files {
		out[dest] = slices.Clone(files)
	}
	return out
}
