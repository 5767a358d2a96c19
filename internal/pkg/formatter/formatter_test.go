package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

func ptr[T any](v T) *T { return &v }

func sampleChallenge() *entity.Challenge {
	return &entity.Challenge{
		ID:               1,
		Title:            "Ocean plastics",
		ProblemStatement: ptr("Too much plastic in the sea"),
		Budget:           ptr(10000.0),
		FirstPrize:       ptr(5000.0),
		Milestones: []entity.Milestone{
			{Enabled: true, Name: "Kickoff", Date: ptr("2026-02-01")},
			{Enabled: false, Name: "Paused phase"},
		},
		EvaluationCriteria: []entity.EvaluationCriterion{
			{Name: "Impact", Weight: "50", Description: "Real-world effect"},
		},
		Reviewers: []string{"alice", "bob"},
	}
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	for _, format := range []entity.ExportFormat{entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX} {
		f, err := factory.Create(format)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := factory.Create(entity.ExportFormat("xml"))
	assert.Error(t, err)
}

func TestMarkdownFormat(t *testing.T) {
	data, err := NewMarkdownFormatter().Format(sampleChallenge())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# Ocean plastics\n"))
	assert.Contains(t, text, "- Problem statement: Too much plastic in the sea")
	assert.Contains(t, text, "- Budget: 10000.00")
	assert.Contains(t, text, "- Prizes: 1st 5000.00")
	assert.Contains(t, text, "- Milestone: Kickoff (2026-02-01)")
	assert.Contains(t, text, "- Milestone: Paused phase [disabled]")
	assert.Contains(t, text, "- Criterion: Impact (weight 50): Real-world effect")
	assert.Contains(t, text, "- Reviewers: alice, bob")
}

func TestMarkdownSkipsEmptyFields(t *testing.T) {
	data, err := NewMarkdownFormatter().Format(&entity.Challenge{ID: 2, Title: "Bare"})
	require.NoError(t, err)

	assert.Equal(t, "# Bare\n\n", string(data))
}

func TestPDFFormatProducesDocument(t *testing.T) {
	data, err := NewPDFFormatter().Format(sampleChallenge())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestDOCXFormatProducesDocument(t *testing.T) {
	data, err := NewDOCXFormatter().Format(sampleChallenge())
	require.NoError(t, err)

	// DOCX files are zip archives.
	assert.True(t, strings.HasPrefix(string(data), "PK"))
}
