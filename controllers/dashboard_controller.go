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
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/monitoring"
	"github.com/supplyline-dev/supplyline/shared"
	"github.com/supplyline-dev/supplyline/utils"
)

// lowStockThreshold is the stock level below which a warehouse inventory
// row counts as low stock on the dashboard.
const lowStockThreshold = 10

type DashboardController struct {
	supplierRepository           *repositories.SupplierRepository
	componentRepository          *repositories.ComponentRepository
	productRepository            *repositories.ProductRepository
	purchaseOrderRepository      *repositories.PurchaseOrderRepository
	warehouseRepository          *repositories.WarehouseRepository
	warehouseInventoryRepository *repositories.WarehouseInventoryRepository
	alertRepository              *repositories.AlertRepository
	shippingInfoRepository       *repositories.ShippingInfoRepository
}

func NewDashboardController(
	supplierRepository *repositories.SupplierRepository,
	componentRepository *repositories.ComponentRepository,
	productRepository *repositories.ProductRepository,
	purchaseOrderRepository *repositories.PurchaseOrderRepository,
	warehouseRepository *repositories.WarehouseRepository,
	warehouseInventoryRepository *repositories.WarehouseInventoryRepository,
	alertRepository *repositories.AlertRepository,
	shippingInfoRepository *repositories.ShippingInfoRepository,
) *DashboardController {
	return &DashboardController{
		supplierRepository:           supplierRepository,
		componentRepository:          componentRepository,
		productRepository:            productRepository,
		purchaseOrderRepository:      purchaseOrderRepository,
		warehouseRepository:          warehouseRepository,
		warehouseInventoryRepository: warehouseInventoryRepository,
		alertRepository:              alertRepository,
		shippingInfoRepository:       shippingInfoRepository,
	}
}

func (c DashboardController) Summary(ctx shared.Context) error {
	timer := prometheus.NewTimer(monitoring.AggregateQueryDuration)
	defer timer.ObserveDuration()

	suppliers, err := c.supplierRepository.Count(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	components, err := c.componentRepository.Count(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	products, err := c.productRepository.Count(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	purchaseOrders, err := c.purchaseOrderRepository.Count(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	openPurchaseOrders, err := c.purchaseOrderRepository.CountOpen()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	warehouses, err := c.warehouseRepository.Count(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	lowStock, err := c.warehouseInventoryRepository.CountBelowThreshold(lowStockThreshold)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	openAlerts, err := c.alertRepository.CountUnacknowledged()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}
	shipmentsInTransit, err := c.shippingInfoRepository.Count(map[string]any{"status": "in_transit"})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard summary").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"suppliers":            suppliers,
		"components":           components,
		"products":             products,
		"purchase_orders":      purchaseOrders,
		"open_purchase_orders": openPurchaseOrders,
		"warehouses":           warehouses,
		"low_stock_items":      lowStock,
		"open_alerts":          openAlerts,
		"shipments_in_transit": shipmentsInTransit,
	})
}

type FinanceController struct {
	invoiceRepository *repositories.InvoiceRepository
	paymentRepository *repositories.PaymentRepository
}

func NewFinanceController(invoiceRepository *repositories.InvoiceRepository, paymentRepository *repositories.PaymentRepository) *FinanceController {
	return &FinanceController{
		invoiceRepository: invoiceRepository,
		paymentRepository: paymentRepository,
	}
}

type financeSummary struct {
	InvoiceCount     int             `json:"invoice_count"`
	OpenInvoices     int             `json:"open_invoices"`
	OverdueInvoices  int             `json:"overdue_invoices"`
	TotalInvoiced    decimal.Decimal `json:"total_invoiced"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// summarizeInvoices reduces invoice rows into the finance summary. The paid
// total is derived from the invoice amounts rather than the payment rows so
// the summary stays consistent with the outstanding balances.
func summarizeInvoices(invoices []models.Invoice, now time.Time) financeSummary {
	summary := financeSummary{
		InvoiceCount:     len(invoices),
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, invoice := range invoices {
		summary.TotalInvoiced = summary.TotalInvoiced.Add(invoice.Amount)
		summary.TotalPaid = summary.TotalPaid.Add(invoice.Amount.Sub(invoice.BalanceDue))
		summary.TotalOutstanding = summary.TotalOutstanding.Add(invoice.BalanceDue)
		if invoice.Status == "open" {
			summary.OpenInvoices++
			if invoice.DueDate != nil && invoice.DueDate.Before(now) && invoice.BalanceDue.IsPositive() {
				summary.OverdueInvoices++
			}
		}
	}
	return summary
}

func (c FinanceController) Summary(ctx shared.Context) error {
	timer := prometheus.NewTimer(monitoring.AggregateQueryDuration)
	defer timer.ObserveDuration()

	invoices, err := c.invoiceRepository.All(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build finance summary").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, summarizeInvoices(invoices, time.Now()))
}

type cashFlowBucket struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// bucketPayments groups payments into per-month totals, oldest month first.
// Payments without a paid_at timestamp fall back to their creation time.
func bucketPayments(payments []models.Payment) []cashFlowBucket {
	totals := make(map[string]cashFlowBucket)
	for _, payment := range payments {
		at := payment.CreatedAt
		if payment.PaidAt != nil {
			at = *payment.PaidAt
		}
		month := at.Format("2006-01")
		bucket, ok := totals[month]
		if !ok {
			bucket = cashFlowBucket{Month: month, Total: decimal.Zero}
		}
		bucket.Total = bucket.Total.Add(payment.Amount)
		bucket.Count++
		totals[month] = bucket
	}

	buckets := utils.Values(totals)
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

func (c FinanceController) CashFlow(ctx shared.Context) error {
	timer := prometheus.NewTimer(monitoring.AggregateQueryDuration)
	defer timer.ObserveDuration()

	payments, err := c.paymentRepository.All(nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build cash flow report").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, bucketPayments(payments))
}
