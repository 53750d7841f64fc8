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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/supplyline-dev/supplyline/database/models"
)

func TestSummarizeInvoices(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	pastDue := now.AddDate(0, 0, -10)
	futureDue := now.AddDate(0, 0, 10)

	invoices := []models.Invoice{
		{Amount: decimal.NewFromInt(100), BalanceDue: decimal.NewFromInt(100), Status: "open", DueDate: &pastDue},
		{Amount: decimal.NewFromInt(200), BalanceDue: decimal.NewFromInt(50), Status: "open", DueDate: &futureDue},
		{Amount: decimal.NewFromInt(300), BalanceDue: decimal.Zero, Status: "paid"},
	}

	summary := summarizeInvoices(invoices, now)

	assert.Equal(t, 3, summary.InvoiceCount)
	assert.Equal(t, 2, summary.OpenInvoices)
	assert.Equal(t, 1, summary.OverdueInvoices)
	assert.True(t, summary.TotalInvoiced.Equal(decimal.NewFromInt(600)))
	assert.True(t, summary.TotalOutstanding.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(450)))
}

func TestSummarizeInvoicesEmpty(t *testing.T) {
	summary := summarizeInvoices(nil, time.Now())

	assert.Equal(t, 0, summary.InvoiceCount)
	assert.True(t, summary.TotalInvoiced.IsZero())
	assert.True(t, summary.TotalOutstanding.IsZero())
}

func TestBucketPayments(t *testing.T) {
	jan := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		{Amount: decimal.NewFromInt(100), PaidAt: &feb},
		{Amount: decimal.NewFromInt(40), PaidAt: &jan},
		{Amount: decimal.NewFromInt(60), PaidAt: &jan},
	}

	buckets := bucketPayments(payments)

	if assert.Len(t, buckets, 2) {
		// oldest month first
		assert.Equal(t, "2024-01", buckets[0].Month)
		assert.True(t, buckets[0].Total.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 2, buckets[0].Count)

		assert.Equal(t, "2024-02", buckets[1].Month)
		assert.True(t, buckets[1].Total.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 1, buckets[1].Count)
	}
}

func TestBucketPaymentsFallsBackToCreatedAt(t *testing.T) {
	payment := models.Payment{Amount: decimal.NewFromInt(25)}
	payment.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	buckets := bucketPayments([]models.Payment{payment})

	if assert.Len(t, buckets, 1) {
		assert.Equal(t, "2024-03", buckets[0].Month)
	}
}
