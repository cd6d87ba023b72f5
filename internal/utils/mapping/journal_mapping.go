package mapping

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		EntryDate:      d.EntryDate,
		Description:    d.Description,
		Reference:      d.Reference,
		Status:         string(d.Status),
		PostedAt:       d.PostedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		EntryDate:      m.EntryDate,
		Description:    m.Description,
		Reference:      m.Reference,
		Status:         domain.JournalStatus(m.Status),
		PostedAt:       m.PostedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain JournalEntryLine to a model JournalEntryLine
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:         d.LineID,
		JournalEntryID: d.JournalEntryID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Description:    d.Description,
	}
}

// ToDomainJournalEntryLine converts a model JournalEntryLine to a domain JournalEntryLine
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:         m.LineID,
		JournalEntryID: m.JournalEntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Description:    m.Description,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of model lines to domain lines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}
