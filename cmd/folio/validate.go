package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
)

func newValidateCommand() *cobra.Command {
	var dir, faqPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check project records and the FAQ without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if dir == "" {
				dir = cfg.ContentDir
			}
			if faqPath == "" {
				faqPath = cfg.FAQPath
			}
			out := cmd.OutOrStdout()

			files, err := filepath.Glob(filepath.Join(dir, "*.json"))
			if err != nil {
				return err
			}
			bad := 0
			for _, f := range files {
				raw, err := os.ReadFile(f)
				if err != nil {
					return err
				}
				if err := content.ValidateProject(raw); err != nil {
					bad++
					fmt.Fprintf(out, "FAIL %s\n", f)
					var ve *content.ValidationError
					if errors.As(err, &ve) {
						for _, p := range ve.Problems {
							fmt.Fprintf(out, "     %s\n", p)
						}
					} else {
						fmt.Fprintf(out, "     %v\n", err)
					}
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", f)
			}

			repo, err := content.Load(os.DirFS(dir), ".", nil)
			if err != nil {
				return err
			}
			for _, r := range repo.Rejected() {
				if strings.HasPrefix(r.Reason, "duplicate slug") {
					bad++
					fmt.Fprintf(out, "FAIL %s\n     %s\n", filepath.Join(dir, r.File), r.Reason)
				}
			}

			if faq, err := content.ReadFAQFile(faqPath); err != nil {
				fmt.Fprintf(out, "skip %s: %v\n", faqPath, err)
			} else {
				fmt.Fprintf(out, "ok   %s (%d questions)\n", faqPath, len(faq.Items))
			}

			if bad > 0 {
				return cliError{code: 3, err: fmt.Errorf("%d of %d project files failed validation", bad, len(files))}
			}
			fmt.Fprintf(out, "%d projects valid\n", repo.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "project directory (default CONTENT_DIR)")
	cmd.Flags().StringVar(&faqPath, "faq", "", "FAQ file (default FAQ_PATH)")
	return cmd
}
