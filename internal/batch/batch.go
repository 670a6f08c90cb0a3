// Package batch runs the warp classifier over a dataset and writes the
// report and result outputs.
package batch

import (
	"go.uber.org/zap"

	"github.com/capturequest/warpclass/internal/logger"
	"github.com/capturequest/warpclass/pkg/warp"
)

// Classification pairs a warp event with its result. The embedded
// structs flatten into one record in JSON output.
type Classification struct {
	warp.Event
	warp.Result
}

// Run classifies every event against the world, in order. Events whose
// feet tile cannot be resolved are logged and skipped; the batch never
// aborts.
func Run(world warp.World, events []warp.Event) ([]Classification, warp.Summary) {
	results := make([]Classification, 0, len(events))
	var sum warp.Summary

	for _, ev := range events {
		res, err := warp.Classify(ev, world)
		if err != nil {
			logger.Warn("skipping warp",
				zap.String("map", ev.Map),
				zap.Int("x", ev.X),
				zap.Int("y", ev.Y),
				zap.Error(err))
			sum.Skip()
			continue
		}
		sum.Add(res)
		results = append(results, Classification{Event: ev, Result: res})
	}

	return results, sum
}
