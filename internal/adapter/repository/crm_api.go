package repository

import (
	"context"
	"net/http"

	"github.com/incial/Incial/internal/domain/entities"
)

// CRMAPI implements repositories.CompanyRepository against the upstream REST API
type CRMAPI struct {
	client *Client
}

// NewCRMAPI creates a new upstream CRM repository
func NewCRMAPI(client *Client) *CRMAPI {
	return &CRMAPI{client: client}
}

// GetAll retrieves every company record
func (r *CRMAPI) GetAll(ctx context.Context) ([]*entities.Company, error) {
	var companies []*entities.Company
	req := r.client.http.R().
		SetContext(ctx).
		SetResult(&companies)

	if _, err := r.client.execute(req, http.MethodGet, "/crm/companies", "crm"); err != nil {
		return nil, err
	}
	return companies, nil
}
