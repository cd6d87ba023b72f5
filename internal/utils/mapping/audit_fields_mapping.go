package mapping

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

// ToModelAuditFields converts domain audit fields to their column form.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt.UTC(),
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt.UTC(),
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts audit columns read back from Postgres. Timestamps
// come back in the session time zone and are normalised to UTC.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt.UTC(),
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt.UTC(),
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
