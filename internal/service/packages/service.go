package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	packageRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/studiopackage"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

// Service сервис каталога пакетов фотосессий
type Service struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// List возвращает список пакетов
// Для публичного каталога activeOnly = true, администратор видит все
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.PackageListResponse, error) {
	packages, err := s.packageRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackages(packages), nil
}

// GetByID получает пакет по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackage(pkg), nil
}

// Create создает новый пакет
func (s *Service) Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg := &domain.StudioPackage{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      active,
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created package id=%s name=%q", created.ID, created.Name)
	return models.FromDomainPackage(created), nil
}

// Update обновляет пакет, меняются только переданные поля
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		pkg.Price = *req.Price
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Update: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated package id=%s", id)
	return models.FromDomainPackage(pkg), nil
}

// Delete удаляет пакет
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted package id=%s", id)
	return nil
}
