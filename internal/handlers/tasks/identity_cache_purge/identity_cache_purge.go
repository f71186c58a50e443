package identity_cache_purge

import (
	"context"
	"time"

	"freight/pkg/logger"
)

type IdentityCachePurge struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func New(log taskLogger, service Service, interval time.Duration) *IdentityCachePurge {
	return &IdentityCachePurge{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *IdentityCachePurge) TTL() time.Duration {
	return p.interval
}

func (p *IdentityCachePurge) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	purged, err := p.service.PurgeIdentityCache(ctx)
	if purged > 0 {
		p.log.With(
			logger.NewField("purged_identities", purged),
		).Info("identity cache purge")
	}

	return err
}

func (p *IdentityCachePurge) Info() string {
	return "identity cache purge"
}
