package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/openmfl/mfl-cli/internal/fieldmap"
	"github.com/openmfl/mfl-cli/internal/harmonize"
)

var batchManifestPath string

// manifest describes a multi-source harmonization run.
type manifest struct {
	OutDir  string           `yaml:"out_dir"`
	Sources []manifestSource `yaml:"sources"`
}

type manifestSource struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Map      string `yaml:"map"`
	AsOf     string `yaml:"as_of"`
	Sheet    string `yaml:"sheet"`
	SkipRows int    `yaml:"skip_rows"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Harmonize several sources from a manifest, concurrently",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		m, err := loadManifest(batchManifestPath)
		if err != nil {
			return err
		}

		jobs := make([]harmonize.SourceJob, 0, len(m.Sources))
		for _, src := range m.Sources {
			fm, err := fieldmap.Load(src.Map)
			if err != nil {
				return eris.Wrapf(err, "source %s", src.Name)
			}
			table, err := loadTable(ctx, src.Input, src.Sheet, src.SkipRows)
			if err != nil {
				return eris.Wrapf(err, "source %s", src.Name)
			}
			res, err := fm.Resolve(table.Header)
			if err != nil {
				return eris.Wrapf(err, "source %s: resolve field map", src.Name)
			}

			asOf := src.AsOf
			if asOf == "" {
				asOf = time.Now().Format("2006-01-02")
			}
			jobs = append(jobs, harmonize.SourceJob{
				Name:       src.Name,
				Harmonizer: harmonize.New(res, src.Name, asOf),
				Rows:       table.Rows,
			})
		}

		results, err := harmonize.RunSources(ctx, jobs)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(m.OutDir, 0o755); err != nil {
			return eris.Wrapf(err, "create output dir %s", m.OutDir)
		}

		for i, result := range results {
			base := filepath.Join(m.OutDir, slug(jobs[i].Name))
			if err := writeJSON(base+".records.json", result.Records); err != nil {
				return err
			}
			if err := writeJSON(base+".report.json", result.Report); err != nil {
				return err
			}
		}

		zap.L().Info("batch complete",
			zap.Int("sources", len(results)),
			zap.String("out_dir", m.OutDir),
		)
		return nil
	},
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read manifest %s", path)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrapf(err, "parse manifest %s", path)
	}
	if len(m.Sources) == 0 {
		return nil, eris.Errorf("manifest %s lists no sources", path)
	}
	if m.OutDir == "" {
		m.OutDir = "."
	}
	for i, src := range m.Sources {
		if src.Name == "" || src.Input == "" || src.Map == "" {
			return nil, eris.Errorf("manifest source %d: name, input and map are required", i)
		}
	}
	return &m, nil
}

// slug makes a source name safe for output file names.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

func init() {
	batchCmd.Flags().StringVar(&batchManifestPath, "manifest", "", "batch manifest YAML path (required)")
	_ = batchCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(batchCmd)
}
