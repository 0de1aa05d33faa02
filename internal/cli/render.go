package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/preview"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(cfgFile *string) *cobra.Command {
	var (
		outDir string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the rendered emails as HTML files",
		Long: `Render the internal and client emails for each form kind and write
them as <kind>_<document>.html into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := preview.Kinds
			if kind != "" {
				k, err := preview.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []domain.FormKind{k}
			}

			overrides, err := LoadOverrides(*cfgFile)
			if err != nil {
				return err
			}

			written, err := Render(overrides, kinds, outDir)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "preview", "output directory")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only render one form kind (contact, quote, work_together)")

	return cmd
}

// Render writes both documents for every kind and returns the file paths.
func Render(overrides *Overrides, kinds []domain.FormKind, outDir string) ([]string, error) {
	brand, err := overrides.ResolveBranding()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, k := range kinds {
		sample, err := overrides.Sample(k, preview.Sample(k))
		if err != nil {
			return nil, err
		}

		for _, doc := range preview.Documents {
			html, err := preview.Render(sample, doc, brand)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s %s email: %w", k, doc, err)
			}

			path := filepath.Join(outDir, fmt.Sprintf("%s_%s.html", k, doc))
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Debug("Rendered preview", "kind", k, "document", doc, "bytes", len(html))
			written = append(written, path)
		}
	}

	log.Info("Previews written", "dir", outDir, "files", len(written))
	return written, nil
}
