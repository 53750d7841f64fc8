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

// Package controllers holds the HTTP handlers. Every entity controller
// follows the same shape: bind and validate the request, check referenced
// rows exist, hand the model to its repository and translate failures into
// the shared error vocabulary.
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/supplyline-dev/supplyline/database"
	"github.com/supplyline-dev/supplyline/monitoring"
	"github.com/supplyline-dev/supplyline/shared"
	"gorm.io/gorm"
)

func bindAndValidate[T any](ctx shared.Context) (T, error) {
	var req T
	if err := ctx.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	return req, nil
}

// invalidReference is the contract for rejected foreign keys: 400 with the
// offending json field named in the message.
func invalidReference(field string) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s", field))
}

// assertExists validates a foreign key against its target table before the
// write is attempted, so a bad reference surfaces as a 400 instead of a
// constraint violation.
func assertExists(repo interface{ Exists(id uint) (bool, error) }, id uint, field string) error {
	exists, err := repo.Exists(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not validate "+field).WithInternal(err)
	}
	if !exists {
		return invalidReference(field)
	}
	return nil
}

// assertRowExists guards nested routes: a missing parent row is a 404, not a
// rejected reference.
func assertRowExists(repo interface{ Exists(id uint) (bool, error) }, id uint, entity string) error {
	exists, err := repo.Exists(id)
	if err != nil {
		return readError(err, entity)
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found")
	}
	return nil
}

func readError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "could not read "+entity).WithInternal(err)
}

func writeError(err error, entity string) error {
	monitoring.WriteFailures.WithLabelValues(entity).Inc()
	if database.IsDuplicateKeyError(err) {
		return echo.NewHTTPError(http.StatusConflict, entity+" already exists").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "could not save "+entity).WithInternal(err)
}

// filtersFromQuery maps camelCase query parameters onto the columns they
// filter. Absent parameters do not constrain the listing.
func filtersFromQuery(ctx shared.Context, params map[string]string) map[string]any {
	filters := make(map[string]any)
	for param, column := range params {
		if v := ctx.QueryParam(param); v != "" {
			filters[column] = v
		}
	}
	return filters
}

type lister[T any] interface {
	List(filters map[string]any, pageInfo shared.PageInfo) (shared.Paged[T], error)
}

func listEntity[T any](ctx shared.Context, repo lister[T], entity string, params map[string]string) error {
	paged, err := repo.List(filtersFromQuery(ctx, params), shared.GetPageInfo(ctx))
	if err != nil {
		return readError(err, entity)
	}
	return ctx.JSON(http.StatusOK, paged)
}

type reader[T any] interface {
	Read(id uint) (T, error)
}

func readEntity[T any](ctx shared.Context, repo reader[T], entity string) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	t, err := repo.Read(id)
	if err != nil {
		return readError(err, entity)
	}
	return ctx.JSON(http.StatusOK, t)
}

type deleter interface {
	Exists(id uint) (bool, error)
	Delete(tx *gorm.DB, id uint) error
}

// deleteEntity answers 404 for rows that are already gone, so deleting the
// same id twice is not idempotent on the status code.
func deleteEntity(ctx shared.Context, repo deleter, entity string) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	exists, err := repo.Exists(id)
	if err != nil {
		return readError(err, entity)
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, entity+" not found")
	}
	if err := repo.Delete(nil, id); err != nil {
		return writeError(err, entity)
	}
	return ctx.NoContent(http.StatusNoContent)
}
