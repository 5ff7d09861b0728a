package view

import (
	"context"

	"billdesk/internal/bridge"
)

// DashboardView is the landing page's stats snapshot.
type DashboardView struct {
	session Session
	Stats   bridge.DashboardStats
}

func NewDashboardView(ctx context.Context, session Session, client *bridge.Client) (*DashboardView, error) {
	stats, err := client.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardView{session: session, Stats: stats}, nil
}
