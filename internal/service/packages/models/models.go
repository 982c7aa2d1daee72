package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Request модели

// CreatePackageRequest запрос на создание пакета
type CreatePackageRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // Цена в рупиях
	Active      *bool  `json:"active,omitempty"`
}

// UpdatePackageRequest запрос на обновление пакета
type UpdatePackageRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Response модели

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// PackageListResponse список пакетов
type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// FromDomainPackage конвертирует domain пакет в response
func FromDomainPackage(pkg *domain.StudioPackage) *PackageResponse {
	return &PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Active:      pkg.Active,
		CreatedAt:   pkg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   pkg.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainPackages конвертирует список domain пакетов в response
func FromDomainPackages(packages []*domain.StudioPackage) *PackageListResponse {
	result := make([]*PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, FromDomainPackage(pkg))
	}
	return &PackageListResponse{
		Packages: result,
		Total:    len(result),
	}
}
