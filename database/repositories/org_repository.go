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

package repositories

import (
	"fmt"

	"github.com/supplyline-dev/supplyline/database/models"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
	*GormRepository[models.Organization]
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:             db,
		GormRepository: newGormRepository[models.Organization](db, orderByName),
	}
}

// Create claims the first free slug before inserting, so two organizations
// with the same name do not collide on the unique slug index.
func (g *OrganizationRepository) Create(tx *gorm.DB, org *models.Organization) error {
	firstFreeSlug, err := g.firstFreeSlug(org.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	org.Slug = firstFreeSlug

	return g.GetDB(tx).Create(org).Error
}

func (g *OrganizationRepository) ReadBySlug(slug string) (models.Organization, error) {
	var org models.Organization
	err := g.db.Where("slug = ?", slug).First(&org).Error
	return org, err
}

func (g *OrganizationRepository) firstFreeSlug(slug string) (string, error) {
	candidate := slug
	for i := 1; ; i++ {
		var count int64
		if err := g.db.Model(models.Organization{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

type UserRepository struct {
	*GormRepository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{newGormRepository[models.User](db, orderByName, "Organization")}
}
