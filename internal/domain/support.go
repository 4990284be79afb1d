package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultInquiryCustomer is recorded when an inquiry has no customer name.
const DefaultInquiryCustomer = "Unknown"

// Inquiry is a customer-service ticket.
type Inquiry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CustomerName string
	Content      string
	ProductName  *string
	Status       InquiryStatus
	AIReply      *string
	CreatedAt    time.Time
}

// InquiryFilter narrows an inquiry listing. Closed inquiries are hidden
// unless IncludeClosed is set or Status asks for them explicitly.
type InquiryFilter struct {
	Status        *InquiryStatus
	IncludeClosed bool
}

// InquiryCounts holds per-status inquiry counts.
type InquiryCounts map[InquiryStatus]int

// Total sums the counts of the given statuses.
func (c InquiryCounts) Total(statuses ...InquiryStatus) int {
	n := 0
	for _, s := range statuses {
		n += c[s]
	}
	return n
}
