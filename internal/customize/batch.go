package customize

import (
	"context"
	"fmt"

	"github.com/jonathan/application-customizer/internal/types"
)

// BatchResult is the outcome of one request in a batch run.
type BatchResult struct {
	Request       Request
	Customization *types.Customization
	Err           error
}

// CustomizeBatch processes requests sequentially, collecting one result per
// request. A failure on one item never aborts the batch; the error is
// recorded and processing continues. Identical prompts within the batch hit
// the gateway cache, so repeated (job, country, type) triples cost one call.
func (c *Customizer) CustomizeBatch(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, 0, len(reqs))
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			results = append(results, BatchResult{Request: req, Err: err})
			continue
		}
		if req.Analysis == nil || req.Profile == nil {
			results = append(results, BatchResult{
				Request: req,
				Err:     fmt.Errorf("batch item %d: analysis and profile are required", i),
			})
			continue
		}

		customization, err := c.Customize(ctx, req)
		results = append(results, BatchResult{
			Request:       req,
			Customization: customization,
			Err:           err,
		})
	}
	return results
}
