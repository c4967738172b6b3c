package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/founder-fit/internal/types"
)

func TestPrintTraitScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var scores types.TraitScores
	for _, trait := range types.AllTraits {
		scores.Set(trait, 3.0)
	}
	scores.Set(types.TraitRiskTolerance, 4.5)

	p.PrintTraitScores(scores)
	output := buf.String()

	assert.Contains(t, output, "TRAIT PROFILE")
	assert.Contains(t, output, string(types.TraitRiskTolerance))
	assert.Contains(t, output, "4.5")
}

func TestPrintRankedModels(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := types.RankedModelList{
		Models: []types.ModelScore{
			{ModelID: "freelancing", DisplayName: "Freelancing", Category: "services", Percentage: 85},
			{ModelID: "saas-development", DisplayName: "SaaS Development", Category: "product", Percentage: 62},
		},
	}

	p.PrintRankedModels(ranked)
	output := buf.String()

	assert.Contains(t, output, "RANKED BUSINESS MODELS")
	assert.Contains(t, output, "Freelancing")
	assert.Contains(t, output, "85%")
	assert.Contains(t, output, "SaaS Development")
}

func TestPrintRankedModels_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedModels(types.RankedModelList{})

	assert.Empty(t, buf.String())
}

func TestPrintGenerationResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.GenerationResult{
		TopModel: types.ModelScore{DisplayName: "Freelancing", Percentage: 85},
		Insights: types.NarrativeInsights{
			Summary:     "Strong independent operator profile.",
			KeyInsights: []string{"High self motivation"},
		},
		Analysis: types.NarrativeAnalysis{
			Characteristics: []types.Characteristic{
				{Title: "Self Starter", Description: "Gets going without prompting."},
			},
		},
	}

	p.PrintGenerationResult(result)
	output := buf.String()

	assert.Contains(t, output, "GENERATED REPORT")
	assert.Contains(t, output, "Freelancing")
	assert.Contains(t, output, "High self motivation")
	assert.Contains(t, output, "Self Starter")
}

func TestPrintGenerationResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGenerationResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCacheStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCacheStatus(types.CacheStatus{
		Count:           3,
		TotalSizeBytes:  2048,
		OldestTimestamp: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
	})
	output := buf.String()

	assert.Contains(t, output, "CACHE STATUS")
	assert.Contains(t, output, "3")
	assert.Contains(t, output, "2048")
	assert.Contains(t, output, "2026-02-10")
}
