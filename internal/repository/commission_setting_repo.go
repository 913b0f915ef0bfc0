package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

type CommissionSettingRepository interface {
	// Upsert writes the rate for one month, replacing an existing row.
	Upsert(ctx context.Context, s *model.CommissionSetting) error
	FindByYearMonth(ctx context.Context, yearMonth string) (*model.CommissionSetting, error)
	List(ctx context.Context) ([]model.CommissionSetting, error)
	Delete(ctx context.Context, yearMonth string) error
}

type commissionSettingRepo struct{ db *gorm.DB }

func NewCommissionSettingRepository(db *gorm.DB) CommissionSettingRepository {
	return &commissionSettingRepo{db: db}
}

func (r *commissionSettingRepo) Upsert(ctx context.Context, s *model.CommissionSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(s).Error
}

func (r *commissionSettingRepo) FindByYearMonth(ctx context.Context, yearMonth string) (*model.CommissionSetting, error) {
	var s model.CommissionSetting
	err := r.db.WithContext(ctx).Where("year_month = ?", yearMonth).First(&s).Error
	return &s, err
}

func (r *commissionSettingRepo) List(ctx context.Context) ([]model.CommissionSetting, error) {
	var settings []model.CommissionSetting
	err := r.db.WithContext(ctx).Order("year_month DESC").Find(&settings).Error
	return settings, err
}

func (r *commissionSettingRepo) Delete(ctx context.Context, yearMonth string) error {
	return r.db.WithContext(ctx).Where("year_month = ?", yearMonth).Delete(&model.CommissionSetting{}).Error
}
