package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/factoryplanner-go/internal/application/mediator"
)

// PrometheusMiddleware records duration and outcome of every request sent
// through the mediator. A nil collector turns the middleware into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		commandName := extractCommandName(request)
		collector.CommandStarted()
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordCommandExecution(commandName, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}

// extractCommandName strips pointer and package prefixes from the request type
// Examples:
//   - "*commands.PlanProductionLineCommand" → "PlanProductionLineCommand"
//   - "*queries.ListRecipesQuery" → "ListRecipesQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}
