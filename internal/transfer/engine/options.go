package engine

import (
	"strings"

	"github.com/attendite/transferengine/internal/shared/config"
	"github.com/attendite/transferengine/internal/shared/metrics"
	"github.com/attendite/transferengine/internal/transfer/cost"
	"github.com/attendite/transferengine/internal/transfer/domain"
)

// Options carries the per-call knobs a caller may override, plus the
// optional observability hooks. A zero Options is not meant to be passed
// directly — use DefaultOptions and override selectively.
type Options struct {
	TransportMode domain.TransportMode
	Engine        config.EngineOptions
	Recorder      metrics.Recorder
	Governor      *Governor
}

// DefaultOptions returns Options built from config.Default and a no-op
// Recorder, suitable when a caller has no config file or metrics registry
// to wire in.
func DefaultOptions() Options {
	return Options{
		TransportMode: domain.TransportGround,
		Engine:        config.Default(),
		Recorder:      metrics.Noop{},
		Governor:      nil,
	}
}

func (o Options) recorder() metrics.Recorder {
	if o.Recorder == nil {
		return metrics.Noop{}
	}
	return o.Recorder
}

func (o Options) costOptions() cost.Options {
	return cost.Options{EnableAcuityLevelAffinity: o.Engine.Cost.EnableAcuityLevelAffinity}
}

func (o Options) transportMode() domain.TransportMode {
	if o.TransportMode != "" {
		return o.TransportMode
	}
	if strings.EqualFold(o.Engine.Transport.DefaultMode, string(domain.TransportAir)) {
		return domain.TransportAir
	}
	return domain.TransportGround
}
