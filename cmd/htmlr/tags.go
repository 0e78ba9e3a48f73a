package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlr/internal/errors"
	"github.com/vango-dev/htmlr/internal/site"
	"github.com/vango-dev/htmlr/pkg/markup"
)

func tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [name...]",
		Short: "List placeholders or check tag names",
		Long: `Without arguments, list the placeholder tokens of the page template.

With arguments, check each name against the tag-name rule and report
whether it is a void element.

Examples:
  htmlr tags
  htmlr tags div br my-custom-element`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, tok := range site.Template().Tokens() {
					fmt.Fprintln(out, tok)
				}
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			var invalid error
			for _, name := range args {
				switch {
				case markup.IsPreamble(name):
					fmt.Fprintf(w, "%s\tpreamble\n", name)
				case !markup.IsTagName(name):
					fmt.Fprintf(w, "%s\tinvalid\n", name)
					if invalid == nil {
						_, invalid = markup.New(name)
					}
				case markup.IsVoidTag(name):
					fmt.Fprintf(w, "%s\tvoid\n", name)
				default:
					fmt.Fprintf(w, "%s\telement\n", name)
				}
			}
			w.Flush()

			if invalid != nil {
				return errors.FromMarkup(invalid)
			}
			return nil
		},
	}
	return cmd
}
