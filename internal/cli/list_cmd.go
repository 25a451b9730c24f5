package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/haytac/devmoji/internal/config"
	"github.com/haytac/devmoji/internal/moji"
)

// NewListCmd creates the 'list' command, printing every known devmoji
// with the commit header prefix it applies to.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known devmojis",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := moji.NewResolver(AppCfg.Devmojis)
			printPack(cmd.OutOrStdout(), resolver, AppCfg)
			return nil
		},
	}
}

func printPack(w io.Writer, resolver *moji.Resolver, cfg *config.Config) {
	for _, e := range resolver.Pack() {
		glyph := resolver.Get(e.Emoji)

		// Entries matching a configured type (or type-scope compound)
		// show the header they decorate.
		var prefix string
		switch {
		case typeKnown(cfg, e.Code):
			prefix = e.Code + ": "
		case strings.Contains(e.Code, "-"):
			parts := strings.SplitN(e.Code, "-", 2)
			if typeKnown(cfg, parts[0]) {
				prefix = parts[0] + "(" + parts[1] + "): "
			}
		}

		// Shortcodes are padded by display width; emoji cells break
		// plain %-30s alignment.
		fmt.Fprintf(w, "%s  %s %s%s\n", glyph, runewidth.FillRight(":"+e.Code+":", 30), prefix, e.Description)
	}
}

func typeKnown(cfg *config.Config, t string) bool {
	for _, known := range cfg.Types {
		if known == t {
			return true
		}
	}
	return false
}
