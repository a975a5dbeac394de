package output

import (
	"fmt"

	"github.com/trafficlab/feedscore/internal/config"
	"github.com/trafficlab/feedscore/internal/report"
)

// Formatter renders a report in one output format.
type Formatter interface {
	Format(rep *report.Report) error
}

// NewFormatter selects the formatter for the configured format.
func NewFormatter(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "console":
		return NewConsoleFormatter(cfg.Quiet, cfg.Verbose, cfg.Enhanced), nil
	case "json":
		return NewJSONFormatter(true, cfg.Output), nil
	case "markdown":
		return NewMarkdownFormatter(cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
