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

package models

type Organization struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Slug        string `json:"slug" gorm:"type:text;unique;not null;index"`
	Description string `json:"description" gorm:"type:text"`

	Users      []User      `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL;"`
	Products   []Product   `json:"products,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
	Warehouses []Warehouse `json:"warehouses,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
}

func (m Organization) TableName() string {
	return "organizations"
}

type User struct {
	Model
	OrganizationID *uint  `json:"organization_id"`
	Name           string `json:"name" gorm:"type:text;not null"`
	Email          string `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Role           string `json:"role" gorm:"type:text;default:'member'"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL;"`
}

func (m User) TableName() string {
	return "users"
}
