package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

type SummaryRepository interface {
	// ExistingKeys returns the set of "source_type:source_id" pairs already
	// summarized, so the sync can append single rows without re-reading them.
	ExistingKeys(ctx context.Context) (map[string]struct{}, error)
	Insert(ctx context.Context, rows []model.SalesSummary) error
	DeleteBySourceType(ctx context.Context, sourceType string) error
	DeleteBySource(ctx context.Context, sourceType string, sourceID uuid.UUID) error
	List(ctx context.Context, filter dto.SummaryFilter) ([]model.SalesSummary, int64, error)
}

type summaryRepo struct{ db *gorm.DB }

func NewSummaryRepository(db *gorm.DB) SummaryRepository { return &summaryRepo{db: db} }

func (r *summaryRepo) ExistingKeys(ctx context.Context) (map[string]struct{}, error) {
	type key struct {
		SourceType string
		SourceID   uuid.UUID
	}
	var keys []key
	err := r.db.WithContext(ctx).Model(&model.SalesSummary{}).
		Select("source_type", "source_id").
		Find(&keys).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k.SourceType+":"+k.SourceID.String()] = struct{}{}
	}
	return set, nil
}

func (r *summaryRepo) Insert(ctx context.Context, rows []model.SalesSummary) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *summaryRepo) DeleteBySourceType(ctx context.Context, sourceType string) error {
	return r.db.WithContext(ctx).
		Where("source_type = ?", sourceType).
		Delete(&model.SalesSummary{}).Error
}

func (r *summaryRepo) DeleteBySource(ctx context.Context, sourceType string, sourceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Delete(&model.SalesSummary{}).Error
}

func (r *summaryRepo) List(ctx context.Context, filter dto.SummaryFilter) ([]model.SalesSummary, int64, error) {
	var rows []model.SalesSummary
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SalesSummary{})

	if filter.Month != "" {
		q = q.Where("sale_date LIKE ?", filter.Month+"%")
	}
	if filter.From != "" {
		q = q.Where("sale_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("sale_date <= ?", filter.To)
	}
	if filter.SaleDestination != "" {
		q = q.Where("sale_destination = ?", filter.SaleDestination)
	}
	if filter.SourceType != "" {
		q = q.Where("source_type = ?", filter.SourceType)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("sale_date DESC").Limit(filter.Limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
