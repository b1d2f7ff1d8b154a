package domain

import "context"

// ServicePort defines the service contract for temporal computation
type ServicePort interface {
	Convert(ctx context.Context, in ConvertInput) (Converted, error)
	Duration(ctx context.Context, in DurationInput) (Duration, error)
	Adjust(ctx context.Context, in AdjustInput) (Adjusted, error)
	Resolve(ctx context.Context, in ResolveInput) (Resolved, error)
}
