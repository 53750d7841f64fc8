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

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"github.com/supplyline-dev/supplyline/cmd/supplyline/api"
	"github.com/supplyline-dev/supplyline/controllers"
	"github.com/supplyline-dev/supplyline/database"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/router"
	"github.com/supplyline-dev/supplyline/shared"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		repositories.Module,
		controllers.Module,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(orgRouter router.OrgRouter) {}),
		fx.Invoke(func(productRouter router.ProductRouter) {}),
		fx.Invoke(func(procurementRouter router.ProcurementRouter) {}),
		fx.Invoke(func(warehouseRouter router.WarehouseRouter) {}),
		fx.Invoke(func(messagingRouter router.MessagingRouter) {}),
		fx.Invoke(func(financeRouter router.FinanceRouter) {}),
		fx.Invoke(func(sourcingRouter router.SourcingRouter) {}),
		fx.Invoke(func(operationsRouter router.OperationsRouter) {}),
		fx.Invoke(func(srv api.Server) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("failed to init error tracking", "err", err)
	}
}
