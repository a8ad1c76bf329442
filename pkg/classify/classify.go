package classify

import (
	"path"
	"path/filepath"

	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/release"
	"github.com/rs/zerolog"
)

// Entry is the classification decision for one file
type Entry struct {
	Name        string
	Info        release.ReleaseInfo
	Destination string
	Admitted    bool
	// Reason is empty for admitted files
	Reason string
}

// Classifier applies one FilterRule under one remote base path
type Classifier struct {
	resolver *release.Resolver
	rule     FilterRule
	base     string
	logger   zerolog.Logger
}

// NewClassifier creates a classifier backed by the shared default resolver
func NewClassifier(rule FilterRule, base string) *Classifier {
	return NewClassifierWithResolver(release.Default(), rule, base)
}

// NewClassifierWithResolver creates a classifier with a custom resolver
func NewClassifierWithResolver(resolver *release.Resolver, rule FilterRule, base string) *Classifier {
	return &Classifier{
		resolver: resolver,
		rule:     rule,
		base:     base,
		logger:   logging.GetLogger("classify"),
	}
}

// DestinationKey is the special category when present, otherwise the region
func DestinationKey(info release.ReleaseInfo) string {
	if info.HasSpecial() {
		return info.Special
	}
	return info.RegionDir
}

// DestinationPath joins the remote base and a destination key. Remote paths
// always use forward slashes.
func DestinationPath(base, key string) string {
	return path.Join(base, key)
}

// Explain classifies a single file. Tags are read from the base name; name is
// kept as given.
func (c *Classifier) Explain(name string) Entry {
	info := c.resolver.Resolve(filepath.Base(name))
	reason := c.rule.reason(info)

	return Entry{
		Name:        name,
		Info:        info,
		Destination: DestinationPath(c.base, DestinationKey(info)),
		Admitted:    reason == "",
		Reason:      reason,
	}
}

// Classify groups the admitted files by destination
func (c *Classifier) Classify(filenames []string) *Plan {
	plan := NewPlan()
	rejected := 0

	for _, name := range filenames {
		entry := c.Explain(name)
		if !entry.Admitted {
			rejected++
			c.logger.Debug().
				Str("file", name).
				Str("region", entry.Info.RegionFull).
				Str("reason", entry.Reason).
				Msg("File skipped")
			continue
		}
		plan.Add(entry.Destination, name)
	}

	c.logger.Debug().
		Int("files", len(filenames)).
		Int("admitted", plan.FileCount()).
		Int("rejected", rejected).
		Int("destinations", plan.Len()).
		Msg("Classification complete")

	return plan
}

// Classify groups filenames by destination under base using the default
// vocabularies. Callers classifying repeatedly should keep a Classifier.
func Classify(filenames []string, rule FilterRule, base string) *Plan {
	return NewClassifier(rule, base).Classify(filenames)
}

// Explain classifies a single file using the default vocabularies. It is a
// convenience wrapper; loops should call Classifier.Explain.
func Explain(filename string, rule FilterRule, base string) Entry {
	return NewClassifier(rule, base).Explain(filename)
}
