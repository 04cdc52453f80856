package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/imagery"
)

func newManifestCommand() *cobra.Command {
	var dir, out string
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Scan project images and write the orientation manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if out == "" {
				out = cfg.ManifestPath
			}
			entries, stats, err := imagery.BuildManifest(os.DirFS(cfg.StaticDir), dir)
			if err != nil {
				return err
			}
			if err := writeFile(out, func(f *os.File) error { return imagery.WriteManifest(f, entries) }); err != nil {
				return err
			}
			slog.Info("manifest: written", "path", out,
				"groups", stats.Groups, "images", stats.Images,
				"portrait", stats.Portrait, "landscape", stats.Landscape)
			fmt.Fprintf(cmd.OutOrStdout(), "%d images in %d groups (%d portrait, %d landscape) -> %s\n",
				stats.Images, stats.Groups, stats.Portrait, stats.Landscape, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "projects", "image directory, relative to STATIC_DIR")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default IMAGE_MANIFEST)")
	return cmd
}

func newBlurCommand() *cobra.Command {
	var dir, out string
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Generate low-resolution blur previews for project images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if out == "" {
				out = cfg.BlurPath
			}
			blur, err := imagery.BuildBlurMap(os.DirFS(cfg.StaticDir), dir, slog.Default())
			if err != nil {
				return err
			}
			if err := writeFile(out, func(f *os.File) error { return imagery.WriteBlurMap(f, blur) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d previews -> %s\n", len(blur), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "projects", "image directory, relative to STATIC_DIR")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default BLUR_PLACEHOLDERS)")
	return cmd
}

// writeFile writes through a temp file and renames it into place so a
// running server never reads a half-written file.
func writeFile(p string, write func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), ".folio-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}
