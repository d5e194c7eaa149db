package seed

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/utils"
)

const (
	CollectionAutoAnswers         = "autoAnswers"
	CollectionServicesPrices      = "servicesPrices"
	CollectionServiceInfo         = "serviceInfo"
	CollectionPropertyManagement  = "propertyManagement"
	CollectionOutstandingPayments = "outstandingPayments"
)

var (
	ErrNoDocumentID      = errors.New("no document id")
	ErrUnknownCollection = errors.New("unknown collection")
)

// fields that identify a row instead of holding a person's shift
const (
	dayKey = "Days"
	idKey  = "id"
)

func IsKnownCollection(collection string) bool {
	switch collection {
	case CollectionAutoAnswers,
		CollectionServicesPrices,
		CollectionServiceInfo,
		CollectionPropertyManagement,
		CollectionOutstandingPayments:
		return true
	}
	_, ok := scheduleFor(collection)
	return ok
}

func scheduleFor(collection string) (domain.ScheduleKind, bool) {
	for _, k := range domain.ScheduleKinds {
		if k.Collection == collection {
			return k, true
		}
	}
	return domain.ScheduleKind{}, false
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Slug replaces every character outside [a-zA-Z0-9] with "_" and lowercases
// the result, e.g. "Dryer Vent Cleaning" -> "dryer_vent_cleaning".
func Slug(s string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(s, "_"))
}

// DocumentID derives the id a fixture item is stored under.
func DocumentID(doc Document, collection string) (string, error) {
	var id string
	switch collection {
	case CollectionAutoAnswers:
		id = Slug(doc.String("Service type"))
	case CollectionServicesPrices:
		id = Slug(doc.String("Service"))
	case CollectionServiceInfo:
		id = Slug(doc.String("SERVICE"))
	case CollectionPropertyManagement, CollectionOutstandingPayments:
		id = doc.String(idKey)
	default:
		if _, ok := scheduleFor(collection); !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
		}
		id = strings.ToLower(doc.String(dayKey))
	}

	if id == "" {
		return "", ErrNoDocumentID
	}
	return id, nil
}

func toAutoAnswer(id string, doc Document) *domain.AutoAnswer {
	return &domain.AutoAnswer{
		ID:          id,
		ServiceType: doc.String("Service type"),
		Message:     doc.String("Message"),
	}
}

func toServicePrice(id string, doc Document) *domain.ServicePrice {
	return &domain.ServicePrice{
		ID:      id,
		Service: doc.String("Service"),
		Price:   doc.String("Price"),
		Note:    doc.String("Note"),
	}
}

func toServiceInfo(id string, doc Document) *domain.ServiceInfo {
	return &domain.ServiceInfo{
		ID:          id,
		Service:     doc.String("SERVICE"),
		WhenItNeeds: doc.String("WHEN IT NEEDS"),
		Frequency:   doc.String("SERVICE FREQUENCY"),
		Methods:     doc.String("SERVICE METHODS"),
		Stages:      doc.String("SERVICE STAGES"),
		Duration:    doc.String("SERVICE DURATION"),
	}
}

func toPropertyCompany(id string, doc Document) *domain.PropertyCompany {
	return &domain.PropertyCompany{
		ID:             id,
		Company:        doc.String("Company"),
		Phone:          doc.String("Phone"),
		InvoicingEmail: doc.String("Invoicing Email"),
		Representative: doc.String("Representative"),
		Email:          doc.String("Email"),
		Phone2:         doc.String("Phone 2"),
		Discount:       doc.String("Discount"),
		Note:           doc.String("Note"),
	}
}

func toOutstandingPayment(id string, doc Document) (*domain.OutstandingPayment, error) {
	amount, err := parseAmount(doc.String("Amount due"))
	if err != nil {
		return nil, err
	}

	status := domain.PaymentStatus(strings.ToUpper(strings.TrimSpace(doc.String("status"))))
	if status == "" {
		status = domain.PaymentOutstanding
	}
	if err := utils.ValidatePaymentStatus(status); err != nil {
		return nil, err
	}

	return &domain.OutstandingPayment{
		ID:           id,
		CustomerName: doc.String("Customer name"),
		AmountDue:    amount,
		InvoiceDate:  doc.String("Invoice date"),
		Status:       status,
	}, nil
}

// parseAmount accepts "1234.5", "$1,234.50" and JSON numbers.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

// toScheduleRow keeps every field except the row keys as a person's shift,
// in file order.
func toScheduleRow(doc Document) *domain.ScheduleRow {
	row := &domain.ScheduleRow{
		Day:    strings.TrimSpace(doc.String(dayKey)),
		Shifts: make([]domain.ShiftEntry, 0, len(doc)),
	}
	for _, f := range doc {
		if f.Key == dayKey || f.Key == idKey || f.Key == "" {
			continue
		}
		row.Set(f.Key, strings.TrimSpace(stringify(f.Value)))
	}
	return row
}
