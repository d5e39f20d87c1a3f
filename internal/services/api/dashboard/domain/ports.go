package domain

import (
	"context"

	"crimemap/internal/core/crimes"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Options(ctx context.Context) (Result[crimes.Options], error)
	View(ctx context.Context, in SelectionInput) (Result[ViewResult], error)
	Summary(ctx context.Context, in SelectionInput) (Result[crimes.Summary], error)
	Breakdown(ctx context.Context, in SelectionInput) (Result[[]crimes.CategoryCount], error)
	Trend(ctx context.Context, in SelectionInput) (Result[[]crimes.YearTotal], error)
	Growth(ctx context.Context, in SelectionInput) (Result[[]crimes.GrowthPoint], error)
	TopDistricts(ctx context.Context, in SelectionInput) (Result[Section[[]crimes.DistrictTotal]], error)
	TopStates(ctx context.Context, in SelectionInput) (Result[[]crimes.StateTotal], error)
	Map(ctx context.Context, in SelectionInput) (Result[Section[*MapResult]], error)

	// Ready reports whether the dataset is loaded and consistent
	Ready(ctx context.Context) error
}
