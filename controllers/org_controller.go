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

package controllers

import (
	"net/http"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/shared"
	"github.com/supplyline-dev/supplyline/transformer"
)

type OrganizationController struct {
	organizationRepository *repositories.OrganizationRepository
}

func NewOrganizationController(organizationRepository *repositories.OrganizationRepository) *OrganizationController {
	return &OrganizationController{organizationRepository: organizationRepository}
}

func (c OrganizationController) List(ctx shared.Context) error {
	return listEntity[models.Organization](ctx, c.organizationRepository, "organization", map[string]string{
		"name": "name",
		"slug": "slug",
	})
}

func (c OrganizationController) Read(ctx shared.Context) error {
	return readEntity[models.Organization](ctx, c.organizationRepository, "organization")
}

func (c OrganizationController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.OrganizationCreateRequest](ctx)
	if err != nil {
		return err
	}
	org := transformer.OrganizationCreateRequestToModel(req)
	if err := c.organizationRepository.Create(nil, &org); err != nil {
		return writeError(err, "organization")
	}
	return ctx.JSON(http.StatusCreated, org)
}

func (c OrganizationController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	org, err := c.organizationRepository.Read(id)
	if err != nil {
		return readError(err, "organization")
	}
	req, err := bindAndValidate[dtos.OrganizationPatchRequest](ctx)
	if err != nil {
		return err
	}
	if transformer.ApplyOrganizationPatchRequestToModel(req, &org) {
		if err := c.organizationRepository.Save(nil, &org); err != nil {
			return writeError(err, "organization")
		}
	}
	return ctx.JSON(http.StatusOK, org)
}

func (c OrganizationController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.organizationRepository, "organization")
}

type UserController struct {
	userRepository         *repositories.UserRepository
	organizationRepository *repositories.OrganizationRepository
}

func NewUserController(userRepository *repositories.UserRepository, organizationRepository *repositories.OrganizationRepository) *UserController {
	return &UserController{
		userRepository:         userRepository,
		organizationRepository: organizationRepository,
	}
}

func (c UserController) List(ctx shared.Context) error {
	return listEntity[models.User](ctx, c.userRepository, "user", map[string]string{
		"organizationId": "organization_id",
		"role":           "role",
		"email":          "email",
	})
}

func (c UserController) Read(ctx shared.Context) error {
	return readEntity[models.User](ctx, c.userRepository, "user")
}

func (c UserController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.UserCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.OrganizationID != nil {
		if err := assertExists(c.organizationRepository, *req.OrganizationID, "organization_id"); err != nil {
			return err
		}
	}
	user := transformer.UserCreateRequestToModel(req)
	if err := c.userRepository.Create(nil, &user); err != nil {
		return writeError(err, "user")
	}
	return ctx.JSON(http.StatusCreated, user)
}

func (c UserController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	user, err := c.userRepository.Read(id)
	if err != nil {
		return readError(err, "user")
	}
	req, err := bindAndValidate[dtos.UserPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.OrganizationID.Present && req.OrganizationID.Value != nil {
		if err := assertExists(c.organizationRepository, *req.OrganizationID.Value, "organization_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyUserPatchRequestToModel(req, &user) {
		if err := c.userRepository.Save(nil, &user); err != nil {
			return writeError(err, "user")
		}
	}
	return ctx.JSON(http.StatusOK, user)
}

func (c UserController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.userRepository, "user")
}
