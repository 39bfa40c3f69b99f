// Package cli implements the command-line driver: flag parsing, styled
// help, listings, and the loop that expands and types each token.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/autotyper/internal/expand"
	"github.com/xonecas/autotyper/internal/typer"
)

// Run expands each token in order and hands the result to the typer.
// A token is fully expanded before its first keystroke, and fully typed
// before the next token is considered, so keyboard output follows
// command-line order. The first failure aborts the run; output already
// typed for earlier tokens stays typed, but the failing token produces
// nothing.
//
// After expansion, <N> placeholders in the text are substituted from
// args (the positional argument list), so a definition can splice in
// later arguments.
func Run(ctx context.Context, exp *expand.Expander, typ typer.Typer, tokens, args []string, delay time.Duration) error {
	for _, token := range tokens {
		text, err := exp.ExpandToken(token)
		if err != nil {
			return fmt.Errorf("expand %q: %w", token, err)
		}
		text = expand.ParseContent(text).Render(args)

		log.Debug().
			Str("token", token).
			Int("chars", len(text)).
			Msg("Typing expansion")

		if err := typ.Type(ctx, text, delay); err != nil {
			return fmt.Errorf("type %q: %w", token, err)
		}
	}
	return nil
}
