package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
)

// MasterService manages the sale-destination and purchase-source master lists.
// Deactivation is soft so historical rows keep resolving their labels.
type MasterService interface {
	CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error)
	ListPlatforms(ctx context.Context, includeHidden bool) ([]dto.PlatformResponse, error)
	UpdatePlatform(ctx context.Context, id uuid.UUID, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error)
	DeactivatePlatform(ctx context.Context, id uuid.UUID) error

	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, includeHidden bool) ([]dto.SupplierResponse, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	DeactivateSupplier(ctx context.Context, id uuid.UUID) error
}

type masterService struct {
	platforms repository.PlatformRepository
	suppliers repository.SupplierRepository
}

func NewMasterService(platforms repository.PlatformRepository, suppliers repository.SupplierRepository) MasterService {
	return &masterService{platforms: platforms, suppliers: suppliers}
}

// ─── Platforms ───────────────────────────────────────────────────────────────

func (s *masterService) CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error) {
	if _, err := s.platforms.FindByName(ctx, req.Name); err == nil {
		return nil, errors.New("同名の販売先が既に登録されています")
	}

	p := model.Platform{
		Name:               req.Name,
		ColorClass:         req.ColorClass,
		SalesType:          "toC",
		SortOrder:          req.SortOrder,
		IsActive:           true,
		Address:            req.Address,
		RepresentativeName: req.RepresentativeName,
		Occupation:         req.Occupation,
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		VerificationMethod: req.VerificationMethod,
		IsAnonymous:        req.IsAnonymous,
	}
	if req.CommissionRate != nil {
		p.CommissionRate = *req.CommissionRate
	}
	if req.SalesType != "" {
		p.SalesType = req.SalesType
	}

	if err := s.platforms.Create(ctx, &p); err != nil {
		return nil, err
	}
	resp := platformToResponse(&p)
	return &resp, nil
}

func (s *masterService) ListPlatforms(ctx context.Context, includeHidden bool) ([]dto.PlatformResponse, error) {
	platforms, err := s.platforms.List(ctx, includeHidden)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlatformResponse, len(platforms))
	for i := range platforms {
		resp[i] = platformToResponse(&platforms[i])
	}
	return resp, nil
}

func (s *masterService) UpdatePlatform(ctx context.Context, id uuid.UUID, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error) {
	p, err := s.platforms.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("販売先が見つかりません")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ColorClass != nil {
		p.ColorClass = *req.ColorClass
	}
	if req.CommissionRate != nil {
		p.CommissionRate = *req.CommissionRate
	}
	if req.SalesType != nil {
		p.SalesType = *req.SalesType
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.IsHidden != nil {
		p.IsHidden = *req.IsHidden
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	if req.RepresentativeName != nil {
		p.RepresentativeName = req.RepresentativeName
	}
	if req.Occupation != nil {
		p.Occupation = req.Occupation
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Website != nil {
		p.Website = req.Website
	}
	if req.VerificationMethod != nil {
		p.VerificationMethod = req.VerificationMethod
	}
	if req.IsAnonymous != nil {
		p.IsAnonymous = *req.IsAnonymous
	}

	if err := s.platforms.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := platformToResponse(p)
	return &resp, nil
}

func (s *masterService) DeactivatePlatform(ctx context.Context, id uuid.UUID) error {
	if _, err := s.platforms.FindByID(ctx, id); err != nil {
		return errors.New("販売先が見つかりません")
	}
	return s.platforms.Deactivate(ctx, id)
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

func (s *masterService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup := model.Supplier{
		Name:               req.Name,
		ColorClass:         req.ColorClass,
		SortOrder:          req.SortOrder,
		IsActive:           true,
		Address:            req.Address,
		RepresentativeName: req.RepresentativeName,
		Occupation:         req.Occupation,
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		VerificationMethod: req.VerificationMethod,
		IsAnonymous:        req.IsAnonymous,
	}
	if err := s.suppliers.Create(ctx, &sup); err != nil {
		return nil, errors.New("仕入先の登録に失敗しました")
	}
	resp := supplierToResponse(&sup)
	return &resp, nil
}

func (s *masterService) ListSuppliers(ctx context.Context, includeHidden bool) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx, includeHidden)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		resp[i] = supplierToResponse(&suppliers[i])
	}
	return resp, nil
}

func (s *masterService) UpdateSupplier(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("仕入先が見つかりません")
	}

	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.ColorClass != nil {
		sup.ColorClass = *req.ColorClass
	}
	if req.SortOrder != nil {
		sup.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		sup.IsActive = *req.IsActive
	}
	if req.IsHidden != nil {
		sup.IsHidden = *req.IsHidden
	}
	if req.Address != nil {
		sup.Address = req.Address
	}
	if req.RepresentativeName != nil {
		sup.RepresentativeName = req.RepresentativeName
	}
	if req.Occupation != nil {
		sup.Occupation = req.Occupation
	}
	if req.Phone != nil {
		sup.Phone = req.Phone
	}
	if req.Email != nil {
		sup.Email = req.Email
	}
	if req.Website != nil {
		sup.Website = req.Website
	}
	if req.VerificationMethod != nil {
		sup.VerificationMethod = req.VerificationMethod
	}
	if req.IsAnonymous != nil {
		sup.IsAnonymous = *req.IsAnonymous
	}

	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := supplierToResponse(sup)
	return &resp, nil
}

func (s *masterService) DeactivateSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		return errors.New("仕入先が見つかりません")
	}
	return s.suppliers.Deactivate(ctx, id)
}

func platformToResponse(p *model.Platform) dto.PlatformResponse {
	return dto.PlatformResponse{
		ID:                 p.ID.String(),
		Name:               p.Name,
		ColorClass:         p.ColorClass,
		CommissionRate:     p.CommissionRate,
		SalesType:          p.SalesType,
		SortOrder:          p.SortOrder,
		IsActive:           p.IsActive,
		IsHidden:           p.IsHidden,
		Address:            p.Address,
		RepresentativeName: p.RepresentativeName,
		Occupation:         p.Occupation,
		Phone:              p.Phone,
		Email:              p.Email,
		Website:            p.Website,
		VerificationMethod: p.VerificationMethod,
		IsAnonymous:        p.IsAnonymous,
	}
}

func supplierToResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:                 s.ID.String(),
		Name:               s.Name,
		ColorClass:         s.ColorClass,
		SortOrder:          s.SortOrder,
		IsActive:           s.IsActive,
		IsHidden:           s.IsHidden,
		Address:            s.Address,
		RepresentativeName: s.RepresentativeName,
		Occupation:         s.Occupation,
		Phone:              s.Phone,
		Email:              s.Email,
		Website:            s.Website,
		VerificationMethod: s.VerificationMethod,
		IsAnonymous:        s.IsAnonymous,
	}
}
