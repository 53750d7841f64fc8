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

package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(query string) Context {
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("defaults when parameters are absent", func(t *testing.T) {
		p := GetPageInfo(queryContext(""))
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.PageSize)
	})

	t.Run("passes valid values through", func(t *testing.T) {
		p := GetPageInfo(queryContext("page=3&pageSize=25"))
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.PageSize)
	})

	t.Run("clamps oversized pages", func(t *testing.T) {
		p := GetPageInfo(queryContext("pageSize=5000"))
		assert.Equal(t, 100, p.PageSize)
	})

	t.Run("rejects nonsense values", func(t *testing.T) {
		p := GetPageInfo(queryContext("page=-2&pageSize=abc"))
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.PageSize)
	})
}

func TestGetParamID(t *testing.T) {
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	id, err := GetParamID(ctx)
	assert.Nil(t, err)
	assert.Equal(t, uint(42), id)

	ctx.SetParamValues("forty-two")
	_, err = GetParamID(ctx)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
