package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// Renderer writes check results as JSON or Markdown reports
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes the result as a Markdown report with the status
// badge, per-field table and issue list consumed by dashboards
func (r *Renderer) RenderMarkdown(result *model.Result, path string) error {
	var b strings.Builder

	b.WriteString("# Label Compliance Report\n\n")
	b.WriteString(fmt.Sprintf("**Status:** %s %s  \n", statusEmoji(result.Status), result.Status))
	b.WriteString(fmt.Sprintf("**Score:** %.2f/100  \n", result.Score))
	b.WriteString(fmt.Sprintf("**Summary:** %s  \n", result.Summary))
	b.WriteString(fmt.Sprintf("**Policy:** %s  \n", result.Policy))
	b.WriteString(fmt.Sprintf("**Extraction source:** %s\n\n", result.Source))

	b.WriteString("## Mandatory Declarations\n\n")
	b.WriteString("| Field | Present | Value |\n")
	b.WriteString("|-------|---------|-------|\n")
	for _, fr := range result.Fields {
		mark := "✗"
		if fr.Present {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", fr.Field.Label(), mark, mdEscape(fr.Value)))
	}
	b.WriteString("\n")

	if len(result.Issues) > 0 {
		b.WriteString("## Issues\n\n")
		for _, iss := range result.Issues {
			b.WriteString(fmt.Sprintf("- **[%s]** %s", iss.Severity, iss.Message))
			if iss.RuleID != "" {
				b.WriteString(fmt.Sprintf(" (%s)", iss.RuleID))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by labelcheck — Legal Metrology (Packaged Commodities) Rules, 2011, six mandatory declarations.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// PrintSummary writes the short human-readable verdict to stdout
func (r *Renderer) PrintSummary(result *model.Result) {
	fmt.Printf("%s %s (score %.2f) — %s\n", statusEmoji(result.Status), result.Status, result.Score, result.Summary)
	for _, fr := range result.Fields {
		mark := "✗"
		if fr.Present {
			mark = "✓"
		}
		fmt.Printf("  %s %-20s %s\n", mark, fr.Field.Label()+":", fr.Value)
	}
	for _, iss := range result.Issues {
		fmt.Printf("  ! [%s] %s\n", iss.Severity, iss.Message)
	}
}

func statusEmoji(s model.Status) string {
	switch s {
	case model.StatusCompliant:
		return "🟢"
	case model.StatusPartial:
		return "🟡"
	default:
		return "🔴"
	}
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
