package entities

import "github.com/google/uuid"

// Company represents a CRM company record owned by the upstream API
type Company struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CompanyMap is an id-to-name lookup rebuilt wholesale on each fetch.
type CompanyMap map[uuid.UUID]string

// BuildCompanyMap projects CRM records into the lookup used for display.
func BuildCompanyMap(companies []*Company) CompanyMap {
	m := make(CompanyMap, len(companies))
	for _, c := range companies {
		if c == nil {
			continue
		}
		m[c.ID] = c.Name
	}
	return m
}

// NameFor resolves a company reference, returning "" when absent.
func (m CompanyMap) NameFor(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return m[*id]
}
