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

package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		WarehouseID Optional[uint] `json:"warehouse_id"`
	}

	t.Run("absent field should not be present", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{}`), &p)
		assert.Nil(t, err)
		assert.False(t, p.WarehouseID.Present)
	})

	t.Run("explicit null should be present with nil value", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"warehouse_id": null}`), &p)
		assert.Nil(t, err)
		assert.True(t, p.WarehouseID.Present)
		assert.Nil(t, p.WarehouseID.Value)
	})

	t.Run("value should be present and set", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"warehouse_id": 42}`), &p)
		assert.Nil(t, err)
		assert.True(t, p.WarehouseID.Present)
		if assert.NotNil(t, p.WarehouseID.Value) {
			assert.Equal(t, uint(42), *p.WarehouseID.Value)
		}
	})

	t.Run("invalid value should error", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"warehouse_id": "not-a-number"}`), &p)
		assert.Error(t, err)
	})
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(Some(uint(7)))
	assert.Nil(t, err)
	assert.Equal(t, "7", string(b))

	b, err = json.Marshal(Null[uint]())
	assert.Nil(t, err)
	assert.Equal(t, "null", string(b))
}
