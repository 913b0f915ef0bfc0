package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings Postgres and Redis with a short deadline and reports
// per-dependency status. Returns 503 when either backend is unreachable
// so the load balancer stops routing to this instance.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
		}

		redisStatus := "up"
		if err := rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		}

		code := http.StatusOK
		if dbStatus != "up" || redisStatus != "up" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"ok":    code == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
		})
	}
}
