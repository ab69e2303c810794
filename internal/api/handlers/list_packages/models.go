package list_packages

import (
	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// PackageResponse пакет тура в HTTP ответе
type PackageResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceAED        float64 `json:"priceAed"`
	Description     string  `json:"description"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	MaxParticipants int     `json:"maxParticipants"`
	DisplayOrder    int     `json:"displayOrder"`
}

// ListPackagesResponse HTTP response model
type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// FromDomainPackages конвертирует доменные пакеты в HTTP response
func FromDomainPackages(packages []*domain.Package) *ListPackagesResponse {
	result := make([]PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, PackageResponse{
			ID:              pkg.ID,
			Name:            pkg.Name,
			DurationMinutes: pkg.DurationMinutes,
			PriceAED:        pkg.PriceAED,
			Description:     pkg.Description,
			ImageURL:        pkg.ImageURL,
			MaxParticipants: pkg.MaxParticipants,
			DisplayOrder:    pkg.DisplayOrder,
		})
	}

	return &ListPackagesResponse{Packages: result}
}
