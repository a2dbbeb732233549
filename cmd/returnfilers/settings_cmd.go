package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"returnfilers/pkg/content"
	"returnfilers/pkg/settings"
	"returnfilers/pkg/theme"
	"returnfilers/pkg/visibility"

	"github.com/spf13/cobra"
)

var errNoSettingsURL = errors.New("no settings URL: pass --url or set SETTINGS_URL")

type showFlags struct {
	url  string
	path string
}

func newSettingsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the site settings",
	}
	cmd.AddCommand(newSettingsShowCmd(root))
	return cmd
}

func newSettingsShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch settings and print the composed view for a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			site := cfg.GetSiteConfig()

			url := flags.url
			if url == "" {
				url = site.SettingsURL
			}
			if url == "" {
				return errNoSettingsURL
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			store := settings.NewStore(
				settings.NewHTTPFetcher(url, &http.Client{Timeout: site.Timeout()}),
				settings.WithTimeout(site.Timeout()))
			store.Initialize(ctx)

			if store.Current() == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: settings unavailable, showing defaults")
			}

			view := content.Compose(store.Current(), content.SiteDefaults(), flags.path, visibility.NewRules(site.WidgetAllowList))
			return printJSON(cmd, view)
		},
	}

	cmd.Flags().StringVar(&flags.url, "url", "", "Settings endpoint (defaults to site.settings_url)")
	cmd.Flags().StringVar(&flags.path, "path", "/", "Page path to compose for")

	return cmd
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors <hex>",
		Short: "Print the CSS colors derived from a hex value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !theme.IsValidHex(args[0]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a 6-digit hex color, using fallback\n", args[0])
			}
			return printJSON(cmd, theme.DeriveColors(args[0]))
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
