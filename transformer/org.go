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

package transformer

import (
	"github.com/gosimple/slug"
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
)

func OrganizationCreateRequestToModel(req dtos.OrganizationCreateRequest) models.Organization {
	return models.Organization{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
}

// ApplyOrganizationPatchRequestToModel reports whether any field changed.
// Renaming recomputes the slug; the repository resolves collisions.
func ApplyOrganizationPatchRequestToModel(req dtos.OrganizationPatchRequest, org *models.Organization) bool {
	updated := false
	if req.Name != nil {
		org.Name = *req.Name
		org.Slug = slug.Make(*req.Name)
		updated = true
	}
	updated = apply(&org.Description, req.Description) || updated
	return updated
}

func UserCreateRequestToModel(req dtos.UserCreateRequest) models.User {
	user := models.User{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
	}
	return user
}

func ApplyUserPatchRequestToModel(req dtos.UserPatchRequest, user *models.User) bool {
	updated := applyOptional(&user.OrganizationID, req.OrganizationID)
	updated = apply(&user.Name, req.Name) || updated
	updated = apply(&user.Email, req.Email) || updated
	updated = apply(&user.Role, req.Role) || updated
	return updated
}
