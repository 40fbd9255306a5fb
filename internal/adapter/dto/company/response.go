package company

// CompanyResponse represents a CRM company in responses
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyListResponse represents the CRM company lookup
type CompanyListResponse struct {
	Companies []*CompanyResponse `json:"companies"`
	Total     int                `json:"total"`
}
