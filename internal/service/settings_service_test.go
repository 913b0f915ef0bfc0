package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

func TestSettingsService_Upsert(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, nil)

	resp, err := svc.Upsert(context.Background(), dto.UpsertCommissionSettingRequest{
		YearMonth: "2025-03",
		Rate:      decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.YearMonth)
	assert.Equal(t, "8", resp.Rate.String())
	require.Len(t, repo.upserted, 1)
}

func TestSettingsService_UpsertValidation(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, nil)

	for _, ym := range []string{"2025-13", "2025-0", "202503", "2025/03", ""} {
		_, err := svc.Upsert(context.Background(), dto.UpsertCommissionSettingRequest{
			YearMonth: ym,
			Rate:      decimal.NewFromInt(8),
		})
		assert.ErrorContains(t, err, "YYYY-MM", ym)
	}

	_, err := svc.Upsert(context.Background(), dto.UpsertCommissionSettingRequest{
		YearMonth: "2025-03",
		Rate:      decimal.NewFromInt(-1),
	})
	assert.ErrorContains(t, err, "0以上")
}

func TestSettingsService_Delete(t *testing.T) {
	repo := &stubSettingsRepo{
		settings: []model.CommissionSetting{
			{YearMonth: "2025-03", Rate: decimal.NewFromInt(8)},
		},
	}
	svc := NewSettingsService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), "2025-03"))
	assert.Equal(t, []string{"2025-03"}, repo.deleted)

	assert.ErrorContains(t, svc.Delete(context.Background(), "2025-04"), "見つかりません")
	assert.ErrorContains(t, svc.Delete(context.Background(), "bad"), "YYYY-MM")
}
