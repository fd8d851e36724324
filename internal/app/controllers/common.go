package controllers

import (
	"context"

	"resident-records-service/internal/app/middleware"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
)

// ErrorResponse documents the body of every failed request
type ErrorResponse struct {
	Success *bool    `json:"success,omitempty" example:"false"`
	Code    int      `json:"code" example:"103000"`
	Message string   `json:"message" example:"Resident not found"`
	Fields  []string `json:"fields,omitempty"`
}

// MessageResponse documents a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Resident saved successfully"`
}

// residentCachePrefix covers every cached /residents read
var residentCachePrefix = middleware.CacheKey("/residents")

// purgeResidentCache drops cached resident reads after a write
func purgeResidentCache(ctx context.Context, c *container.ServiceContainer) {
	if store, ok := c.GetService("cache").(services.InterfaceCacheStore); ok && store != nil {
		store.Purge(ctx, residentCachePrefix)
	}
}
