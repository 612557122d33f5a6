package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogIngestRun records one execution of the catalog ingestion pipeline.
type CatalogIngestRun struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Source     string            `gorm:"column:source;not null" json:"source"`
	Fetched    int               `gorm:"column:fetched" json:"fetched"`
	Upserted   int               `gorm:"column:upserted" json:"upserted"`
	Rejected   int               `gorm:"column:rejected" json:"rejected"`
	UsedSeed   bool              `gorm:"column:used_seed" json:"used_seed"`
	Rejections datatypes.JSONMap `gorm:"column:rejections;type:jsonb" json:"rejections,omitempty"`
	StartedAt  time.Time         `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time         `gorm:"column:finished_at" json:"finished_at"`
}

func (CatalogIngestRun) TableName() string {
	return "catalog_ingest_runs"
}
