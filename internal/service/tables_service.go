package service

import (
	"context"

	"blogsphere/internal/database"
	"blogsphere/internal/repository"
)

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Tables   int    `json:"tables"`
}

type TablesService interface {
	GetCountTablesBD(ctx context.Context) (int, error)
	Health(ctx context.Context) *Health
}

type tablesService struct {
	tablesRepo repository.TablesRepository
	pinger     database.Pinger
}

func NewTablesService(tablesRepo repository.TablesRepository, pinger database.Pinger) TablesService {
	return &tablesService{tablesRepo: tablesRepo, pinger: pinger}
}

func (t *tablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	return t.tablesRepo.CountTablesDB(ctx)
}

// Health reports "ok" only when the database answers and the schema is visible.
func (t *tablesService) Health(ctx context.Context) *Health {
	h := &Health{Status: "ok", Database: "up"}

	if t.pinger == nil || t.pinger.HealthCheck(ctx) != nil {
		h.Status = "degraded"
		h.Database = "down"
		return h
	}

	count, err := t.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		h.Status = "degraded"
		return h
	}
	h.Tables = count

	return h
}
