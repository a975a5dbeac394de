package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/trafficlab/feedscore/internal/report"
)

// JSONFormatter formats the report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// jsonDocument wraps the report with tool metadata for machine consumers.
type jsonDocument struct {
	Tool      string         `json:"tool"`
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Report    *report.Report `json:"report"`
}

// Format encodes the report, to stdout or the configured output file.
func (f *JSONFormatter) Format(rep *report.Report) error {
	doc := jsonDocument{
		Tool:      "feedscore",
		Version:   "1.0.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Report:    rep,
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
			return fmt.Errorf("writing report to %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
