package setup

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort   = "Create an example configuration file"
	MsgCreated = "Created %s\n"
	MsgEdit    = "Please adapt the actions in it to your project."
)

// Embedded message files
var (
	//go:embed setup-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed setup-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
