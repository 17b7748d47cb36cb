// Package lrucache is the in-process AddressCache: bounded by entry count, entries expire by TTL.
package lrucache

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/address"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type entry struct {
	value     address.Converted
	expiresAt time.Time
}

// AddressCache implements ports.AddressCache.
// maxTTL bounds every entry; a shorter ttl passed to Set is honored on Get.
type AddressCache struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time
}

func NewAddressCache(size int, maxTTL time.Duration) *AddressCache {
	return &AddressCache{
		lru: expirable.NewLRU[string, entry](size, nil, maxTTL),
		now: time.Now,
	}
}

func (c *AddressCache) Get(_ context.Context, rawAddress string) (address.Converted, bool) {
	e, ok := c.lru.Get(rawAddress)
	if !ok {
		return address.Converted{}, false
	}
	if !c.now().Before(e.expiresAt) {
		c.lru.Remove(rawAddress)
		return address.Converted{}, false
	}
	return e.value, true
}

func (c *AddressCache) Set(_ context.Context, rawAddress string, value address.Converted, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.lru.Add(rawAddress, entry{value: value, expiresAt: c.now().Add(ttl)})
}

func (c *AddressCache) Len() int {
	return c.lru.Len()
}
