package setup

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the setup command.
// RunE is attached by the root command, which owns the loaded settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
	}
}
