package service

import (
	"context"
	"fmt"

	"billdesk/internal/model"
	"billdesk/internal/repository"
)

// --- DTOs ---

type DashboardStatsResponse struct {
	TotalRevenue      float64           `json:"total_revenue"`
	TotalExpenses     float64           `json:"total_expenses"`
	NetProfit         float64           `json:"net_profit"`
	OutstandingAmount float64           `json:"outstanding_amount"`
	TotalInvoices     int64             `json:"total_invoices"`
	RecentInvoices    []InvoiceResponse `json:"recent_invoices"`
}

// --- Interface ---

type DashboardService interface {
	GetStats(ctx context.Context) (DashboardStatsResponse, error)
}

type dashboardService struct {
	invoiceRepo repository.InvoiceRepository
	payrollRepo repository.PayrollRepository
}

func NewDashboardService(invoiceRepo repository.InvoiceRepository, payrollRepo repository.PayrollRepository) DashboardService {
	return &dashboardService{invoiceRepo: invoiceRepo, payrollRepo: payrollRepo}
}

// GetStats aggregates the dashboard figures. Revenue counts paid invoices,
// outstanding counts sent and overdue ones, and expenses are settled payroll.
func (s *dashboardService) GetStats(ctx context.Context) (DashboardStatsResponse, error) {
	revenue, err := s.invoiceRepo.SumTotals(ctx, model.StatusPaid)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to sum revenue: %w", err)
	}

	sent, err := s.invoiceRepo.SumTotals(ctx, model.StatusSent)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to sum outstanding invoices: %w", err)
	}
	overdue, err := s.invoiceRepo.SumTotals(ctx, model.StatusOverdue)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to sum overdue invoices: %w", err)
	}

	expenses, err := s.payrollRepo.SumNetPay(ctx, model.PayrollPaid)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to sum payroll expenses: %w", err)
	}

	totalInvoices, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to count invoices: %w", err)
	}

	recent, err := s.invoiceRepo.Recent(ctx, 5)
	if err != nil {
		return DashboardStatsResponse{}, fmt.Errorf("failed to fetch recent invoices: %w", err)
	}
	recentResponses := make([]InvoiceResponse, 0, len(recent))
	for _, inv := range recent {
		recentResponses = append(recentResponses, toInvoiceResponse(inv, false))
	}

	return DashboardStatsResponse{
		TotalRevenue:      revenue.InexactFloat64(),
		TotalExpenses:     expenses.InexactFloat64(),
		NetProfit:         revenue.Sub(expenses).InexactFloat64(),
		OutstandingAmount: sent.Add(overdue).InexactFloat64(),
		TotalInvoices:     totalInvoices,
		RecentInvoices:    recentResponses,
	}, nil
}
