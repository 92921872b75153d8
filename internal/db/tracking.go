package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/application-customizer/internal/llm"
	"github.com/jonathan/application-customizer/internal/types"
)

// SaveGeneratedContent records a piece of generated content for an
// application.
func (db *DB) SaveGeneratedContent(ctx context.Context, gc *types.GeneratedContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO generated_content (application_id, content_type, content, quality_score, generation_method)
		 VALUES ($1, $2, $3, $4, $5)`,
		gc.ApplicationID, string(gc.ContentType), gc.Content, gc.QualityScore, gc.GenerationMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to save generated content: %w", err)
	}
	return nil
}

// TrackLLMUsage records token and cost usage for a single LLM call tied to
// an application.
func (db *DB) TrackLLMUsage(ctx context.Context, applicationID uuid.UUID, model string, tokens int, costUSD float64) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO llm_usage (application_id, model, tokens_used, cost_usd)
		 VALUES ($1, $2, $3, $4)`,
		applicationID, model, tokens, costUSD,
	)
	if err != nil {
		return fmt.Errorf("failed to track llm usage: %w", err)
	}
	return nil
}

// UsageSummary aggregates every recorded LLM call across all applications,
// grouped by model. This is the persistent counterpart of the gateway's
// in-memory snapshot.
func (db *DB) UsageSummary(ctx context.Context) (llm.UsageStats, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT model, COUNT(*), COALESCE(SUM(tokens_used), 0), COALESCE(SUM(cost_usd), 0)
		 FROM llm_usage
		 GROUP BY model
		 ORDER BY model`)
	if err != nil {
		return llm.UsageStats{}, fmt.Errorf("failed to query llm usage: %w", err)
	}
	defer rows.Close()

	stats := llm.UsageStats{ByModel: make(map[string]llm.ModelUsage)}
	for rows.Next() {
		var model string
		var requests, tokens int
		var costUSD float64
		if err := rows.Scan(&model, &requests, &tokens, &costUSD); err != nil {
			return llm.UsageStats{}, fmt.Errorf("failed to scan llm usage row: %w", err)
		}
		stats.ByModel[model] = llm.ModelUsage{Requests: requests, Tokens: tokens, CostUSD: costUSD}
		stats.TotalRequests += requests
		stats.TotalTokens += tokens
		stats.TotalCostUSD += costUSD
	}
	if err := rows.Err(); err != nil {
		return llm.UsageStats{}, fmt.Errorf("failed to read llm usage rows: %w", err)
	}
	return stats, nil
}
