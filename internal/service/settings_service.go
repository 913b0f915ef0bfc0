package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
	"github.com/Retrend821/inventory-saas-sub000/internal/worker"
)

// SettingsService manages the per-month commission-rate overrides.
type SettingsService interface {
	Upsert(ctx context.Context, req dto.UpsertCommissionSettingRequest) (*dto.CommissionSettingResponse, error)
	List(ctx context.Context) ([]dto.CommissionSettingResponse, error)
	Delete(ctx context.Context, yearMonth string) error
}

type settingsService struct {
	repo       repository.CommissionSettingRepository
	dispatcher *worker.Dispatcher
}

func NewSettingsService(repo repository.CommissionSettingRepository, dispatcher *worker.Dispatcher) SettingsService {
	return &settingsService{repo: repo, dispatcher: dispatcher}
}

var yearMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func (s *settingsService) Upsert(ctx context.Context, req dto.UpsertCommissionSettingRequest) (*dto.CommissionSettingResponse, error) {
	if !yearMonthRe.MatchString(req.YearMonth) {
		return nil, errors.New("年月はYYYY-MM形式で指定してください")
	}
	if req.Rate.IsNegative() {
		return nil, errors.New("手数料率は0以上で指定してください")
	}

	setting := model.CommissionSetting{YearMonth: req.YearMonth, Rate: req.Rate}
	if err := s.repo.Upsert(ctx, &setting); err != nil {
		return nil, err
	}

	// A rate change invalidates settlements already summarized for that month.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "settings"})
	}

	resp := settingToResponse(&setting)
	return &resp, nil
}

func (s *settingsService) List(ctx context.Context) ([]dto.CommissionSettingResponse, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CommissionSettingResponse, len(settings))
	for i := range settings {
		resp[i] = settingToResponse(&settings[i])
	}
	return resp, nil
}

func (s *settingsService) Delete(ctx context.Context, yearMonth string) error {
	if !yearMonthRe.MatchString(yearMonth) {
		return errors.New("年月はYYYY-MM形式で指定してください")
	}
	if _, err := s.repo.FindByYearMonth(ctx, yearMonth); err != nil {
		return errors.New("指定した月の設定が見つかりません")
	}
	return s.repo.Delete(ctx, yearMonth)
}

func settingToResponse(s *model.CommissionSetting) dto.CommissionSettingResponse {
	return dto.CommissionSettingResponse{
		ID:        s.ID.String(),
		YearMonth: s.YearMonth,
		Rate:      s.Rate,
	}
}
