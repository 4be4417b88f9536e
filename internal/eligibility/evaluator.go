package eligibility

import (
	"strings"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// Evaluate derives the booking eligibility verdict from a snapshot of tenant documents.
// The function is pure: it performs no I/O and never mutates its input.
func Evaluate(documents []domain.Document, category domain.TenantCategory) Verdict {
	verdict := Verdict{
		TotalCount:       len(documents),
		MissingDocuments: make([]MissingDocument, 0),
	}

	// 1. Подсчитываем документы по статусам
	for _, doc := range documents {
		switch doc.Status {
		case domain.DocumentApproved:
			verdict.ApprovedCount++
		case domain.DocumentPending:
			verdict.PendingCount++
		case domain.DocumentRejected:
			verdict.RejectedCount++
		}
	}

	// 2. Определяем обязательный набор документов
	required := category.RequiredDocuments()
	verdict.RequiredCount = len(required)

	// 3. Сверяем каждый обязательный тип со снапшотом
	byType := indexByType(documents)
	satisfied := 0
	for _, docType := range required {
		doc, ok := byType[docType.ID]
		switch {
		case !ok:
			verdict.MissingDocuments = append(verdict.MissingDocuments, MissingDocument{
				ID:     docType.ID,
				Label:  docType.Label,
				Status: domain.DocumentMissing,
			})
		case !doc.IsApproved():
			verdict.MissingDocuments = append(verdict.MissingDocuments, MissingDocument{
				ID:     docType.ID,
				Label:  docType.Label,
				Status: doc.Status,
			})
		default:
			satisfied++
		}
	}

	// 4. Бронирование разрешено только при полном наборе одобренных документов
	verdict.CanBook = len(verdict.MissingDocuments) == 0 && satisfied == verdict.RequiredCount

	// 5. Выбираем сообщение по приоритету: missing -> rejected -> pending -> success
	if labels := labelsWithStatus(verdict.MissingDocuments, domain.DocumentMissing); len(labels) > 0 {
		verdict.StatusType = StatusWarning
		verdict.Message = msgMissingPrefix + strings.Join(labels, labelSeparator)
		return verdict
	}
	if labels := labelsWithStatus(verdict.MissingDocuments, domain.DocumentRejected); len(labels) > 0 {
		verdict.StatusType = StatusError
		verdict.Message = msgRejectedPrefix + strings.Join(labels, labelSeparator)
		return verdict
	}
	if labels := labelsWithStatus(verdict.MissingDocuments, domain.DocumentPending); len(labels) > 0 {
		verdict.StatusType = StatusWarning
		verdict.Message = msgPendingPrefix + strings.Join(labels, labelSeparator)
		return verdict
	}
	if verdict.CanBook {
		verdict.StatusType = StatusSuccess
		verdict.Message = msgSuccess
		return verdict
	}

	// Недостижимо при корректных статусах, но неизвестный статус документа попадает сюда
	verdict.CanBook = false
	verdict.StatusType = StatusError
	verdict.Message = msgIncomplete
	return verdict
}

// Unavailable returns the verdict used when the document snapshot could not be fetched.
// Callers must pair it with their own error flag: the shape alone does not tell
// "fetch failed" apart from "verified as incomplete".
func Unavailable() Verdict {
	return Verdict{
		CanBook:          false,
		StatusType:       StatusError,
		Message:          msgUnavailable,
		MissingDocuments: make([]MissingDocument, 0),
	}
}

// indexByType keeps one document per type. If the snapshot holds duplicates,
// the best status wins: approved > pending > rejected.
func indexByType(documents []domain.Document) map[int64]domain.Document {
	result := make(map[int64]domain.Document, len(documents))
	for _, doc := range documents {
		current, ok := result[doc.DocTypeID]
		if !ok || statusRank(doc.Status) > statusRank(current.Status) {
			result[doc.DocTypeID] = doc
		}
	}
	return result
}

func statusRank(s domain.DocumentStatus) int {
	switch s {
	case domain.DocumentApproved:
		return 3
	case domain.DocumentPending:
		return 2
	case domain.DocumentRejected:
		return 1
	default:
		return 0
	}
}

// labelsWithStatus возвращает метки документов с указанным статусом в исходном порядке
func labelsWithStatus(docs []MissingDocument, status domain.DocumentStatus) []string {
	labels := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Status == status {
			labels = append(labels, d.Label)
		}
	}
	return labels
}
