package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/incial/Incial/internal/adapter/presenter"
	"github.com/incial/Incial/internal/domain/repositories"
)

// Company handles CRM company lookup requests
type Company struct {
	companyRepo repositories.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyRepo repositories.CompanyRepository, logger *zap.Logger) *Company {
	return &Company{companyRepo: companyRepo, logger: logger}
}

// List handles GET /companies
func (h *Company) List(c echo.Context) error {
	companies, err := h.companyRepo.GetAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCompanyListResponse(companies))
}
