package release

import (
	"slices"
	"sync"

	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/rs/zerolog"
)

// Resolver turns filenames into ReleaseInfo using a region vocabulary and a
// special category table
type Resolver struct {
	regions    []string
	categories []Category
	logger     zerolog.Logger
}

// NewResolver creates a resolver with the default vocabularies
func NewResolver() *Resolver {
	return &Resolver{
		regions:    defaultRegions,
		categories: defaultCategories,
		logger:     logging.GetLogger("release.resolver"),
	}
}

// NewResolverWith creates a resolver with custom vocabularies. Both are copied.
func NewResolverWith(regions []string, categories []Category) *Resolver {
	return &Resolver{
		regions:    slices.Clone(regions),
		categories: cloneCategories(categories),
		logger:     logging.GetLogger("release.resolver"),
	}
}

// Resolve classifies one filename
func (r *Resolver) Resolve(filename string) ReleaseInfo {
	tags := ExtractTags(filename)

	region := ResolveRegion(tags, r.regions)
	extra := tags
	if region.Found {
		extra = make([]string, 0, len(tags)-1)
		extra = append(extra, tags[:region.Index]...)
		extra = append(extra, tags[region.Index+1:]...)
	} else {
		r.logger.Info().
			Str("file", filename).
			Strs("tags", tags).
			Msg("Region not found")
	}

	special, _ := ResolveSpecial(extra, r.categories)

	info := ReleaseInfo{
		RegionDir:  region.Dir,
		RegionFull: region.Full,
		Special:    special,
		ExtraInfo:  extra,
	}

	r.logger.Trace().
		Str("file", filename).
		Str("region", info.RegionDir).
		Str("regionFull", info.RegionFull).
		Str("special", info.Special).
		Strs("extra", info.ExtraInfo).
		Msg("Resolved release info")

	return info
}

// defaultResolver is built on first use so its logger picks up the
// configured global logger
var defaultResolver = sync.OnceValue(NewResolver)

// Default returns the shared resolver with the default vocabularies
func Default() *Resolver {
	return defaultResolver()
}

// Resolve classifies one filename with the shared default resolver
func Resolve(filename string) ReleaseInfo {
	return Default().Resolve(filename)
}
