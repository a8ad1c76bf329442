package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sync a filtered, region-sorted ROM collection with rsync"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgSyncShort       = "Sync every configured system to the target"
	MsgPlanShort       = "Show where each system's files would go, without syncing"
	MsgClassifyShort   = "Show the release info and sync decision for file names"
	MsgConfigShort     = "Create or inspect the configuration file"
	MsgConfigInitShort = "Write a commented example configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Status messages
	MsgNoSystems        = "No systems configured."
	MsgSystemHeader     = "\n%s -> %s\n"
	MsgConfigWritten    = "Wrote example configuration to %s\n"
	MsgNotRunNotice     = "\nNO RUN MODE - rsync was not invoked"
	MsgDryRunNotice     = "\nDRY RUN MODE - rsync was run with --dry-run"
	MsgConfigPathFormat = "Config file: %s\n"
	MsgConfigSaved      = "Saved normalised configuration to %s\n"

	// Version output
	MsgVersionFormat = "%s version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrConfigExists = "%s already exists, use --force to replace it"
	MsgErrSyncFailed   = "%d of %d systems did not sync cleanly"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagLogLevel       = "Log level (trace, debug, info, warn, error), overrides -v"
	MsgFlagLogFile        = "Log file path, \"-\" to log to the console only"
	MsgFlagDryRun         = "Run rsync with --dry-run"
	MsgFlagNoRun          = "Only print the rsync commands"
	MsgFlagForce          = "Replace an existing configuration file"
	MsgFlagFormat         = "Print the configuration as toml or yaml instead of a summary"
	MsgFlagWrite          = "Save the normalised configuration back, backing up the old file"
	MsgFlagIncludeRegion  = "Only sync regions containing one of these"
	MsgFlagExcludeRegion  = "Skip regions containing one of these"
	MsgFlagIncludeSpecial = "Only sync files with a tag containing one of these"
	MsgFlagExcludeSpecial = "Skip files with a tag containing one of these"
	MsgFlagBase           = "Remote base path used for the destination column"
	MsgFlagTargetPath     = "Override target.path from the config file"
	MsgFlagRemoteHost     = "Override target.remote_host from the config file"
)
