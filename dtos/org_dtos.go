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

type OrganizationCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type OrganizationPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UserCreateRequest struct {
	OrganizationID *uint  `json:"organization_id"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role"`
}

type UserPatchRequest struct {
	OrganizationID Optional[uint] `json:"organization_id"`
	Name           *string        `json:"name"`
	Email          *string        `json:"email" validate:"omitempty,email"`
	Role           *string        `json:"role"`
}
