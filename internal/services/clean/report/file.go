package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"bitextclean/internal/core/version"
	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/services/clean/domain"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk report shape
type Document struct {
	domain.Result `yaml:",inline"`

	Build     version.BuildInfo `json:"build" yaml:"build"`
	ElapsedMS int64             `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// FileWriter implements domain.ReportWriter, picking the encoding from the extension
type FileWriter struct{}

var _ domain.ReportWriter = FileWriter{}

// Write encodes res as JSON (.json) or YAML (.yaml, .yml) at path
func (FileWriter) Write(path string, res domain.Result) error {
	doc := Document{Build: version.Info(), ElapsedMS: res.Elapsed().Milliseconds(), Result: res}

	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		b, err = json.MarshalIndent(doc, "", "  ")
		b = append(b, '\n')
	case ".yaml", ".yml":
		b, err = yaml.Marshal(doc)
	default:
		return perr.WithField(perr.InvalidArgf("unsupported report format %q", filepath.Ext(path)), path)
	}
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "encode report")
	}
	return perr.FromCreate(os.WriteFile(path, b, 0o644), "write report", path)
}
