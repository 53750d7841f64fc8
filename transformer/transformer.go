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

// Package transformer maps request DTOs onto database models. Patch
// application follows one rule everywhere: a field absent from the request
// leaves the model untouched, a present field overwrites it. Nullable
// foreign keys additionally accept an explicit null to clear the reference.
package transformer

import (
	"github.com/supplyline-dev/supplyline/dtos"
	"gorm.io/datatypes"
)

func apply[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

// applyRef is apply for model fields that are themselves pointers. A present
// value overwrites, but a plain pointer cannot clear the field; clearing goes
// through Optional.
func applyRef[T any](dst **T, src *T) bool {
	if src == nil {
		return false
	}
	v := *src
	*dst = &v
	return true
}

func applyOptional[T any](dst **T, src dtos.Optional[T]) bool {
	if !src.Present {
		return false
	}
	if src.Value == nil {
		*dst = nil
		return true
	}
	v := *src.Value
	*dst = &v
	return true
}

func applyJSON(dst *datatypes.JSON, src datatypes.JSON) bool {
	if src == nil {
		return false
	}
	*dst = src
	return true
}
