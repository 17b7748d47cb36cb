// Package rediscache is the shared AddressCache for deployments running several instances.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "storecourier:address:"

// convertedDTO is the JSON stored under each key.
type convertedDTO struct {
	Original     string   `json:"original"`
	Sido         string   `json:"sido"`
	Sigungu      string   `json:"sigungu"`
	AdminDong    string   `json:"admin_dong"`
	LegalDong    string   `json:"legal_dong"`
	RoadAddress  string   `json:"road_address,omitempty"`
	JibunAddress string   `json:"jibun_address,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// AddressCache implements ports.AddressCache on Redis. Redis errors are logged and
// treated as misses so the normalizer falls through to the geocoder.
type AddressCache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewClient connects and pings the server.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewAddressCache(rdb *redis.Client, logger *slog.Logger) *AddressCache {
	return &AddressCache{
		rdb:    rdb,
		logger: logger.With("component", "redis_address_cache"),
	}
}

func (c *AddressCache) Get(ctx context.Context, rawAddress string) (address.Converted, bool) {
	raw, err := c.rdb.Get(ctx, keyPrefix+rawAddress).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "address cache read failed", "address", rawAddress, "error", err)
		}
		return address.Converted{}, false
	}

	var dto convertedDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		c.logger.WarnContext(ctx, "address cache entry is corrupt", "address", rawAddress, "error", err)
		return address.Converted{}, false
	}

	return toDomain(dto), true
}

// Set skips degraded values.
func (c *AddressCache) Set(ctx context.Context, rawAddress string, value address.Converted, ttl time.Duration) {
	if ttl <= 0 || value.Degraded() {
		return
	}

	raw, err := json.Marshal(fromDomain(value))
	if err != nil {
		c.logger.WarnContext(ctx, "address cache entry encode failed", "address", rawAddress, "error", err)
		return
	}

	if err = c.rdb.Set(ctx, keyPrefix+rawAddress, raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "address cache write failed", "address", rawAddress, "error", err)
	}
}

func fromDomain(value address.Converted) convertedDTO {
	dto := convertedDTO{Original: value.Original()}
	if r := value.Converted(); r != nil {
		dto.Sido = r.Sido
		dto.Sigungu = r.Sigungu
		dto.AdminDong = r.AdminDong
		dto.LegalDong = r.LegalDong
		dto.RoadAddress = r.RoadAddress
		dto.JibunAddress = r.JibunAddress
	}
	if coords, ok := value.Coordinates(); ok {
		lat, lng := coords.Latitude(), coords.Longitude()
		dto.Lat, dto.Lng = &lat, &lng
	}
	return dto
}

func toDomain(dto convertedDTO) address.Converted {
	result := address.GeocodeResult{
		Sido:         dto.Sido,
		Sigungu:      dto.Sigungu,
		AdminDong:    dto.AdminDong,
		LegalDong:    dto.LegalDong,
		RoadAddress:  dto.RoadAddress,
		JibunAddress: dto.JibunAddress,
	}
	if dto.Lat != nil && dto.Lng != nil {
		if coords, err := kernel.NewCoordinates(*dto.Lat, *dto.Lng); err == nil {
			result.Coordinates = coords
		}
	}
	return address.NewConverted(dto.Original, result)
}
