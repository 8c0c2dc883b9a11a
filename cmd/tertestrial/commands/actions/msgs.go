package actions

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "List the configured actions"
)

// Embedded message files
var (
	//go:embed actions-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed actions-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
