// Package addressing turns store addresses into administrative-unit form before submission.
// Conversion never fails the pipeline: any geocoder problem degrades to the original text.
package addressing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/ports"
)

const DefaultCacheTTL = 30 * time.Minute

// Normalizer resolves raw addresses through a cache-first lookup on the geocoder.
type Normalizer struct {
	geocoder ports.Geocoder
	cache    ports.AddressCache
	ttl      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewNormalizer builds a Normalizer. A zero ttl uses DefaultCacheTTL, a zero timeout leaves
// the caller's deadline alone.
func NewNormalizer(
	geocoder ports.Geocoder,
	cache ports.AddressCache,
	ttl time.Duration,
	timeout time.Duration,
	logger *slog.Logger,
) *Normalizer {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Normalizer{
		geocoder: geocoder,
		cache:    cache,
		ttl:      ttl,
		timeout:  timeout,
		logger:   logger.With("component", "address_normalizer"),
	}
}

// Normalize returns the converted address, from cache when fresh.
// Failures yield a degraded value carrying only the original text; those are not cached.
func (n *Normalizer) Normalize(ctx context.Context, rawAddress string) address.Converted {
	if strings.TrimSpace(rawAddress) == "" {
		n.logger.WarnContext(ctx, "Address is empty, sending as is")
		return address.NewDegraded(rawAddress)
	}

	if cached, ok := n.cache.Get(ctx, rawAddress); ok {
		return cached
	}

	callCtx := ctx
	if n.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	result, err := n.geocoder.Convert(callCtx, rawAddress)
	if err != nil {
		n.logger.WarnContext(ctx, "Address conversion failed, using original address",
			"address", rawAddress, "error", err)
		return address.NewDegraded(rawAddress)
	}

	converted := address.NewConverted(rawAddress, result)
	n.cache.Set(ctx, rawAddress, converted, n.ttl)
	return converted
}

// NormalizePair converts origin and destination addresses concurrently.
func (n *Normalizer) NormalizePair(ctx context.Context, origin, destination string) (address.Converted, address.Converted) {
	done := make(chan address.Converted, 1)
	go func() {
		done <- n.Normalize(ctx, destination)
	}()
	o := n.Normalize(ctx, origin)
	return o, <-done
}
