package app

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/storiesascode/storiesascode/internal/blueprint"
	"github.com/storiesascode/storiesascode/internal/logger"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().StringVar(&blueprintPath, "blueprint", "", "blueprint file, defaults to the configured one")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the project JSON to this file instead of stdout")
	generateCmd.Flags().BoolVar(&softDelete, "soft-delete", false, "generate soft delete stories")
	generateCmd.Flags().BoolVar(&owaspStories, "owasp", false, "add the OWASP security stories")
	generateCmd.Flags().BoolVar(&printMetrics, "metrics", false, "print the log statement counters to stderr when done")

	rootCmd.AddCommand(generateCmd)
}

var (
	blueprintPath string
	outPath       string
	softDelete    bool
	owaspStories  bool
	printMetrics  bool

	generateCmd = &cobra.Command{
		Use:     "generate",
		Short:   "Generate the CRUD user stories of a blueprint and print the project as JSON",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := blueprintPath
			if path == "" {
				path = cfg.Blueprint
			}

			res, err := blueprint.Load(path)
			if err != nil {
				return err
			}

			opts := cfg.Generator.Options()
			if softDelete {
				opts.ShouldSoftDelete = true
			}

			if err = res.Project.GenerateCRUDStories(opts); err != nil {
				return err
			}

			if owaspStories {
				res.Project.AddOWASPStories(nil)
			}

			out, err := res.Project.Output()
			if err != nil {
				return err
			}

			log.Debug().Str("blueprint", path).Int("stories", len(out.Stories)).Msg("stories generated")

			if err = writeJSON(cmd.OutOrStdout(), outPath, out); err != nil {
				return err
			}

			if printMetrics {
				return logger.WriteMetrics(cmd.ErrOrStderr())
			}

			return nil
		},
	}
)

// writeJSON encodes v to path, or to stdout when path is empty.
func writeJSON(stdout io.Writer, path string, v any) error {
	if path == "" {
		return encodeJSON(stdout, v)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err = encodeJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "failed to close output file")
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "failed to write project")
}
