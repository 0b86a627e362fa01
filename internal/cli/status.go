package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/soyeahso/underline/internal/config"
	"github.com/soyeahso/underline/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show underline status and configuration summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("underline %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			// status never creates the file, so check before loading
			if _, err := os.Stat(paths.Config); errors.Is(err, fs.ErrNotExist) {
				fmt.Println("Config:  not found (run `underline init` to create it)")
				return nil
			}

			store := config.New()
			if err := store.Load(paths.Config); err != nil {
				fmt.Printf("Config:  error loading: %v\n", err)
				return nil
			}

			v := store.Values()
			apiLog := "disabled"
			if v.LogAPIIssues {
				apiLog = v.APILogFile
			}
			fmt.Printf("API:     log=%s\n", apiLog)
			fmt.Printf("Session: name=%s namespace=%s\n", v.SessionName, v.SessionDefaultNamespace)
			fmt.Printf("Cookie:  path=%s subdomain=%q ssl=%t http=%t expire=%ds remove=%d\n",
				v.CookieDefaultPath, v.CookieDefaultSubDomain, v.CookieDefaultSSL,
				v.CookieDefaultHTTP, v.CookieDefaultExpireTime, v.CookieDefaultRemoveTime)
			return nil
		},
	}
}
