package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"osa-filters/internal/requirements"
)

// Lint validates a requirements list: every entry must have a
// non-empty name and, when versioned, a version spec that parses as a
// PEP 440 specifier set. Blank lines and comments are skipped.
func (s Service) Lint(ctx context.Context, req LintRequest) (LintResult, error) {
	result := LintResult{}
	for i, raw := range req.Requirements {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result.Checked++
		parsed := requirements.Split(line)
		if strings.TrimSpace(parsed.Name) == "" {
			result.Issues = append(result.Issues, LintIssue{
				Line:        i + 1,
				Requirement: line,
				Reason:      "requirement has no name",
			})
			continue
		}
		if err := requirements.ValidateSpec(line); err != nil {
			result.Issues = append(result.Issues, LintIssue{
				Line:        i + 1,
				Requirement: line,
				Reason:      "invalid version spec: " + err.Error(),
			})
		}
	}
	log.Ctx(ctx).Debug().Int("checked", result.Checked).Int("issues", len(result.Issues)).Msg("lint completed")
	return result, nil
}
