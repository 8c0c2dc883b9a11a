package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kevgo/tertestrial/internal/cli"
	"github.com/kevgo/tertestrial/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		styled := output.DetectFormat(os.Stderr).Styled()
		fmt.Fprintln(os.Stderr, output.RenderError(err, styled))
		os.Exit(1)
	}
}
