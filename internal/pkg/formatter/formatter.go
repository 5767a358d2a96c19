package formatter

import (
	"fmt"
	"strings"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/isodate"
)

type Formatter interface {
	Format(challenge *entity.Challenge) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// summaryLines renders the populated challenge fields as flat text lines
// shared by all export formats. Empty fields are skipped.
func summaryLines(c *entity.Challenge) []string {
	var lines []string

	add := func(label string, value *string) {
		if value != nil && *value != "" {
			lines = append(lines, label+": "+*value)
		}
	}
	addList := func(label string, values []string) {
		if len(values) > 0 {
			lines = append(lines, label+": "+strings.Join(values, ", "))
		}
	}

	add("Problem statement", c.ProblemStatement)
	add("Goals", c.Goals)
	add("Challenge type", c.ChallengeType)
	add("Participant type", c.ParticipantType)
	add("Geographic filter", c.GeographicFilter)
	add("Language", c.Language)

	if c.TeamParticipation != nil {
		lines = append(lines, fmt.Sprintf("Team participation: %t", *c.TeamParticipation))
	}

	addList("Submission formats", c.SubmissionFormats)
	addList("Submission documentation", c.SubmissionDocumentation)
	add("Submission instructions", c.SubmissionInstructions)

	add("Prize model", c.PrizeModel)
	if prizes := prizeLine(c); prizes != "" {
		lines = append(lines, "Prizes: "+prizes)
	}
	if c.Budget != nil {
		lines = append(lines, fmt.Sprintf("Budget: %.2f", *c.Budget))
	}
	add("Non-monetary rewards", c.NonMonetaryRewards)

	if c.StartDate != nil && c.EndDate != nil {
		lines = append(lines, fmt.Sprintf("Timeline: %s to %s", isodate.Format(*c.StartDate), isodate.Format(*c.EndDate)))
	} else if c.StartDate != nil {
		lines = append(lines, "Starts: "+isodate.Format(*c.StartDate))
	} else if c.EndDate != nil {
		lines = append(lines, "Ends: "+isodate.Format(*c.EndDate))
	}

	for _, m := range c.Milestones {
		line := "Milestone: " + m.Name
		if m.Date != nil {
			line += " (" + *m.Date + ")"
		}
		if !m.Enabled {
			line += " [disabled]"
		}
		lines = append(lines, line)
	}
	add("Timeline notes", c.TimelineNotes)

	add("Evaluation model", c.EvaluationModel)
	addList("Reviewers", c.Reviewers)
	for _, criterion := range c.EvaluationCriteria {
		line := "Criterion: " + criterion.Name
		if criterion.Weight != "" {
			line += " (weight " + criterion.Weight + ")"
		}
		if criterion.Description != "" {
			line += ": " + criterion.Description
		}
		lines = append(lines, line)
	}

	addList("Notification preferences", c.NotificationPreferences)
	addList("Notification methods", c.NotificationMethods)
	addList("Access level", c.AccessLevel)
	add("Success metrics", c.SuccessMetrics)

	return lines
}

func prizeLine(c *entity.Challenge) string {
	var parts []string
	if c.FirstPrize != nil {
		parts = append(parts, fmt.Sprintf("1st %.2f", *c.FirstPrize))
	}
	if c.SecondPrize != nil {
		parts = append(parts, fmt.Sprintf("2nd %.2f", *c.SecondPrize))
	}
	if c.ThirdPrize != nil {
		parts = append(parts, fmt.Sprintf("3rd %.2f", *c.ThirdPrize))
	}
	if c.HonorableMentions != nil {
		parts = append(parts, fmt.Sprintf("%d honorable mentions", *c.HonorableMentions))
	}
	return strings.Join(parts, ", ")
}
