package config

import (
	"fmt"
	"strings"

	"github.com/kism/smart-rom-sync/pkg/errors"
)

// Validate checks the configuration is usable for a sync. All problems are
// reported in a single CONFIG_INVALID error.
func (c *Config) Validate() error {
	var problems []string

	switch c.Target.Type {
	case TargetLocal, TargetRsync:
	default:
		problems = append(problems, fmt.Sprintf("invalid target type %q, must be %q or %q",
			c.Target.Type, TargetRsync, TargetLocal))
	}
	if c.Target.Type == TargetRsync && c.Target.RemoteHost == "" {
		problems = append(problems, "target.remote_host is required for rsync targets")
	}
	if c.Target.Path == "" {
		problems = append(problems, "target.path is required")
	}

	for i, s := range c.Systems {
		if s.LocalDir == "" {
			problems = append(problems, fmt.Sprintf("systems[%d]: local_dir is required", i))
		}
		if s.RemoteDir == "" {
			problems = append(problems, fmt.Sprintf("systems[%d]: remote_dir is required", i))
		}
		if s.LocalDir != "" && s.LocalDir == s.RemoteDir {
			problems = append(problems, fmt.Sprintf("systems[%d]: local_dir and remote_dir cannot be the same", i))
		}
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrConfigInvalid, strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}
