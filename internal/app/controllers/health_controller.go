package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/internal/error/response"
)

// HandleHealthFunc returns the health-check handler.
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"database": "up",
			"sessions": "up",
		}

		sqlDB, err := container.GetDB().DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			health["database"] = "down"
		} else {
			stats := sqlDB.Stats()
			health["db_pool"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
			}
		}

		if pingErr := sessions(container).Ping(ctx.Request.Context()); pingErr != nil {
			health["sessions"] = "down"
		}

		if health["database"] == "down" {
			response.FailWithMessage(ctx, code.ErrConnectionUnavailable, code.GetMessage(code.ErrConnectionUnavailable), health)
			return
		}
		response.Success(ctx, health)
	}
}
