package main

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlr/internal/errors"
	"github.com/vango-dev/htmlr/internal/site"
	"github.com/vango-dev/htmlr/pkg/content"
)

func renderCmd() *cobra.Command {
	var (
		output   string
		fragment string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page",
		Long: `Render the hello-world page, or one of its fragments, to stdout.

Fragments:
  page       the full document (default)
  greetings  the greetings list
  clock      the "the time is" fragment

Examples:
  htmlr render
  htmlr render -o public/index.html
  htmlr render --fragment=greetings --defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := renderFragment(cmd.Context(), fragment, defaults)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), html)
				return nil
			}
			if err := atomic.WriteFile(output, bytes.NewReader([]byte(html))); err != nil {
				return errors.New("E141").WithDetail("Cannot write " + output).Wrap(err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", len(html), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout (atomically)")
	cmd.Flags().StringVarP(&fragment, "fragment", "f", "page", "What to render (page, greetings, clock)")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Use the built-in greetings instead of the content store")

	return cmd
}

// renderFragment renders the named fragment.
func renderFragment(ctx context.Context, fragment string, defaults bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		html string
		err  error
	)
	switch fragment {
	case "clock":
		html, err = site.RenderNode(ctx, "clock", site.Clock(time.Now()), nil)
	case "page", "greetings":
		greetings, lerr := loadGreetings(ctx, defaults)
		if lerr != nil {
			return "", lerr
		}
		if fragment == "page" {
			html, err = site.Render(ctx, greetings, site.Options{})
		} else {
			html, err = site.RenderNode(ctx, "greetings", site.Greetings(greetings), nil)
		}
	default:
		return "", errors.New("E143").
			WithDetail(fmt.Sprintf("Unknown fragment %q", fragment)).
			WithSuggestion("Use page, greetings or clock")
	}
	if err != nil {
		if coded := errors.FromMarkup(err); coded != nil {
			return "", coded
		}
		return "", err
	}
	return html, nil
}

// loadGreetings reads the greetings from the content store, or returns
// the built-in ones when defaults is set.
func loadGreetings(ctx context.Context, defaults bool) ([]content.Greeting, error) {
	if defaults {
		return content.DefaultGreetings, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := openStore(ctx, cfg, newLogger(cfg))
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Greetings(ctx)
}
