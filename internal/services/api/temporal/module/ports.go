package module

import (
	"context"

	temporaldom "hourglass/internal/services/api/temporal/domain"
	temporalsvc "hourglass/internal/services/api/temporal/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptTemporalPort adapts the temporal service to the domain port interface
type adaptTemporalPort struct{ svc temporalsvc.Service }

// Convert implements the domain ServicePort interface
func (a adaptTemporalPort) Convert(ctx context.Context, in temporaldom.ConvertInput) (temporaldom.Converted, error) {
	return a.svc.Convert(ctx, in)
}

// Duration implements the domain ServicePort interface
func (a adaptTemporalPort) Duration(ctx context.Context, in temporaldom.DurationInput) (temporaldom.Duration, error) {
	return a.svc.Duration(ctx, in)
}

// Adjust implements the domain ServicePort interface
func (a adaptTemporalPort) Adjust(ctx context.Context, in temporaldom.AdjustInput) (temporaldom.Adjusted, error) {
	return a.svc.Adjust(ctx, in)
}

// Resolve implements the domain ServicePort interface
func (a adaptTemporalPort) Resolve(ctx context.Context, in temporaldom.ResolveInput) (temporaldom.Resolved, error) {
	return a.svc.Resolve(ctx, in)
}
