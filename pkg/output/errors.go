package output

import (
	"strings"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/style"
)

// RenderError formats an error as a message followed by its hint
func RenderError(err error, styled bool) string {
	var b strings.Builder
	b.WriteString(style.Render(style.ErrorStyle, styled, "Error: "+errors.GetMessage(err)))
	if hint := errors.GetHint(err); hint != "" {
		b.WriteString("\n")
		b.WriteString(style.Render(style.HintStyle, styled, hint))
	}
	return b.String()
}
