package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/xonecas/autotyper/internal/constants"
	"github.com/xonecas/autotyper/internal/expand"
	"github.com/xonecas/autotyper/internal/styles"
)

// ListCmd prints all defined names, one per line, skipping hidden ones.
func ListCmd(w io.Writer, table *expand.Table) {
	for _, name := range table.Names() {
		if strings.HasPrefix(name, constants.HiddenPrefix) {
			continue
		}
		fmt.Fprintln(w, name)
	}
}

// ListFullCmd prints every visible name with its expansion (a single
// repetition, placeholders left intact). Newlines in the output are
// escaped so each entry stays on one line. Range repetitions inside
// definitions make the shown text one possible expansion.
func ListFullCmd(w io.Writer, table *expand.Table, exp *expand.Expander) {
	for _, name := range table.Names() {
		if strings.HasPrefix(name, constants.HiddenPrefix) {
			continue
		}
		text, err := exp.Expand(expand.Reference{Name: name, Repeat: expand.Once()})
		if err != nil {
			fmt.Fprintf(w, "%s: %s\n", styles.BrandBold.Render(name), styles.Error.Render(err.Error()))
			continue
		}
		text = strings.ReplaceAll(text, "\n", `\n`)
		fmt.Fprintf(w, "%s: %s\n", styles.BrandBold.Render(name), text)
	}
}
