// internal/service/dashboard_service.go
package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	opsv1 "github.com/localbzz/clientops/api/proto/ops/v1/generated"
	"github.com/localbzz/clientops/internal/models"
	"github.com/localbzz/clientops/internal/repository"
)

type DashboardService struct {
	opsv1.UnimplementedDashboardServiceServer
	reports *repository.ReportRepository
}

func NewDashboardService(reports *repository.ReportRepository) *DashboardService {
	return &DashboardService{
		reports: reports,
	}
}

// GetDashboard aggregates upcoming shoots, per-client task load, and
// overall totals into one response
func (s *DashboardService) GetDashboard(ctx context.Context, req *opsv1.GetDashboardRequest) (*opsv1.GetDashboardResponse, error) {
	upcoming, err := s.reports.UpcomingShoots(ctx, 10)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load upcoming shoots: %v", err)
	}

	taskLoad, err := s.reports.ClientTaskLoad(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load task load: %v", err)
	}

	totals, err := s.reports.Totals(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load totals: %v", err)
	}

	protoShoots := make([]*opsv1.UpcomingShoot, len(upcoming))
	for i, row := range upcoming {
		protoShoots[i] = convertUpcomingShootRow(row)
	}

	protoLoad := make([]*opsv1.ClientTaskLoad, len(taskLoad))
	for i, row := range taskLoad {
		protoLoad[i] = &opsv1.ClientTaskLoad{
			ClientId:     row.ClientID,
			ClientName:   row.ClientName,
			OpenTasks:    int32(row.OpenTasks),
			OverdueTasks: int32(row.Overdue),
		}
	}

	return &opsv1.GetDashboardResponse{
		UpcomingShoots: protoShoots,
		TaskLoad:       protoLoad,
		ActiveClients:  int32(totals.ActiveClients),
		OpenTasks:      int32(totals.OpenTasks),
		OverdueTasks:   int32(totals.OverdueTasks),
	}, nil
}

func convertUpcomingShootRow(row models.UpcomingShootRow) *opsv1.UpcomingShoot {
	shoot := &opsv1.Shoot{
		Id:        row.ShootID,
		ClientId:  row.ClientID,
		ShootDate: formatDate(row.ShootDate),
		Status:    convertStringToShootStatus(row.Status),
		Type:      convertStringToShootType(row.Type),
	}

	if row.ShootTime.Valid && row.ShootTime.String != "" {
		shootTime := row.ShootTime.String
		shoot.ShootTime = &shootTime
	}
	if row.Location.Valid && row.Location.String != "" {
		location := row.Location.String
		shoot.Location = &location
	}

	return &opsv1.UpcomingShoot{
		Shoot:      shoot,
		ClientName: row.ClientName,
	}
}
