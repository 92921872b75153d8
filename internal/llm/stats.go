package llm

// ModelUsage accumulates usage for one model.
type ModelUsage struct {
	Requests int     `json:"requests"`
	Tokens   int     `json:"tokens"`
	CostUSD  float64 `json:"cost_usd"`
}

// UsageStats is the cumulative usage picture for a gateway. Counters reflect
// actual API spend only: cache hits and failed calls do not contribute.
type UsageStats struct {
	TotalRequests int                   `json:"total_requests"`
	TotalTokens   int                   `json:"total_tokens"`
	TotalCostUSD  float64               `json:"total_cost_usd"`
	ByModel       map[string]ModelUsage `json:"by_model"`
}

func (s *UsageStats) record(model string, tokens int, cost float64) {
	s.TotalRequests++
	s.TotalTokens += tokens
	s.TotalCostUSD += cost

	if s.ByModel == nil {
		s.ByModel = make(map[string]ModelUsage)
	}
	usage := s.ByModel[model]
	usage.Requests++
	usage.Tokens += tokens
	usage.CostUSD += cost
	s.ByModel[model] = usage
}

func (s *UsageStats) clone() UsageStats {
	out := *s
	out.ByModel = make(map[string]ModelUsage, len(s.ByModel))
	for model, usage := range s.ByModel {
		out.ByModel[model] = usage
	}
	return out
}

// AverageCostPerRequest returns the mean cost across recorded requests.
func (s UsageStats) AverageCostPerRequest() float64 {
	if s.TotalRequests == 0 {
		return 0
	}
	return s.TotalCostUSD / float64(s.TotalRequests)
}
