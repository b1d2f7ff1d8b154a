// Package http provides http transport for temporal computation
package http

import (
	stdhttp "net/http"

	"hourglass/internal/modkit/httpkit"
	"hourglass/internal/services/api/temporal/domain"
	svc "hourglass/internal/services/api/temporal/service"
)

// Register mounts temporal endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ConvertInput](r, "/convert", h.convert)
	httpkit.PostJSON[domain.DurationInput](r, "/duration", h.duration)
	httpkit.PostJSON[domain.AdjustInput](r, "/adjust", h.adjust)
	httpkit.PostJSON[domain.ResolveInput](r, "/resolve", h.resolve)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /temporal/convert Temporal temporalConvert
// @Summary Convert a datetime to another timezone
// @Tags Temporal
// @Accept json
// @Produce json
// @Param payload body domain.ConvertInput true "Datetime and target timezone"
// @Success 200 {object} domain.Converted "ok"
// @Router /temporal/convert [post]
func (h *handlers) convert(r *stdhttp.Request, in domain.ConvertInput) (any, error) {
	return h.svc.Convert(r.Context(), in)
}

// swagger:route POST /temporal/duration Temporal temporalDuration
// @Summary Compute the duration between two timestamps
// @Tags Temporal
// @Accept json
// @Produce json
// @Param payload body domain.DurationInput true "Start and end instants"
// @Success 200 {object} domain.Duration "ok"
// @Router /temporal/duration [post]
func (h *handlers) duration(r *stdhttp.Request, in domain.DurationInput) (any, error) {
	return h.svc.Duration(r.Context(), in)
}

// swagger:route POST /temporal/adjust Temporal temporalAdjust
// @Summary Add or subtract a duration from a timestamp
// @Tags Temporal
// @Accept json
// @Produce json
// @Param payload body domain.AdjustInput true "Datetime, adjustment, and timezone"
// @Success 200 {object} domain.Adjusted "ok"
// @Router /temporal/adjust [post]
func (h *handlers) adjust(r *stdhttp.Request, in domain.AdjustInput) (any, error) {
	return h.svc.Adjust(r.Context(), in)
}

// swagger:route POST /temporal/resolve Temporal temporalResolve
// @Summary Resolve a relative time expression to an absolute datetime
// @Tags Temporal
// @Accept json
// @Produce json
// @Param payload body domain.ResolveInput true "Expression, timezone, optional anchor and week start"
// @Success 200 {object} domain.Resolved "ok"
// @Router /temporal/resolve [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}
