package repositories

import (
	"context"

	"github.com/incial/Incial/internal/domain/entities"
)

// CompanyRepository defines the interface for CRM company data access
type CompanyRepository interface {
	// GetAll retrieves every company record
	GetAll(ctx context.Context) ([]*entities.Company, error)
}
