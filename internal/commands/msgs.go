package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Runs the tests your editor asks for"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Version output
	MsgVersionFormat = "tertestrial version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Print the commands instead of running them"
	MsgFlagConfig  = "Path of the configuration file"
	MsgFlagPipe    = "Path of the named pipe the editor writes to"
	MsgFlagShell   = "Shell that runs the commands"
	MsgFlagOutput  = "Output format (auto, term, text, json, yaml, toml)"

	// Listen messages
	MsgExiting         = "\nSee you later!"
	MsgErrLoadSettings = "failed to load settings: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)
)
