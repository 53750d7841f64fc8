// Copyright (C) 2024 supplyline
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/supplyline-dev/supplyline/cmd/supplyline/api"
	"github.com/supplyline-dev/supplyline/controllers"
	"github.com/supplyline-dev/supplyline/database"
	"github.com/supplyline-dev/supplyline/shared"
)

// crudController is the handler surface every entity controller exposes.
type crudController interface {
	List(ctx shared.Context) error
	Create(ctx shared.Context) error
	Read(ctx shared.Context) error
	Update(ctx shared.Context) error
	Delete(ctx shared.Context) error
}

func registerCRUD(apiRouter *echo.Group, path string, controller crudController) *echo.Group {
	group := apiRouter.Group(path)
	group.POST("", controller.Create)
	group.GET("", controller.List)
	group.GET("/:id", controller.Read)
	group.PUT("/:id", controller.Update)
	group.DELETE("/:id", controller.Delete)
	return group
}

type APIRouter struct {
	*echo.Group
}

func NewAPIRouter(
	srv api.Server,
	db shared.DB,
	dashboardController *controllers.DashboardController,
	financeController *controllers.FinanceController,
) APIRouter {
	apiRouter := srv.Echo.Group("/api")

	apiRouter.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiRouter.GET("/health", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}
		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	apiRouter.GET("/info", func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		poolCfg := database.GetPoolConfigFromEnv()
		resp := map[string]any{
			"runtime": map[string]any{
				"go_version":     runtime.Version(),
				"num_goroutines": runtime.NumGoroutine(),
				"heap_alloc":     mem.HeapAlloc,
				"sys":            mem.Sys,
			},
			"process": map[string]any{
				"pid":            os.Getpid(),
				"uptime_seconds": int(time.Since(api.StartedAt).Seconds()),
			},
			"pool": map[string]any{
				"db_name":            poolCfg.DBName,
				"max_open_conns":     poolCfg.MaxOpenConns,
				"conn_max_lifetime":  poolCfg.ConnMaxLifetime.String(),
				"conn_max_idle_time": poolCfg.ConnMaxIdleTime.String(),
			},
		}
		if sqlDB, err := db.DB(); err == nil {
			resp["db_stats"] = sqlDB.Stats()
		}
		return ctx.JSON(200, resp)
	})

	apiRouter.GET("/dashboard-summary", dashboardController.Summary)
	apiRouter.GET("/finance/summary", financeController.Summary)
	apiRouter.GET("/finance/cash-flow", financeController.CashFlow)

	return APIRouter{Group: apiRouter}
}
