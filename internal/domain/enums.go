package domain

import "strings"

// InventoryAction is the kind of stock mutation requested through manage_inventory.
type InventoryAction string

const (
	InventoryActionRegister InventoryAction = "register"
	InventoryActionSell     InventoryAction = "sell"
	InventoryActionUpdate   InventoryAction = "update"
)

func (a InventoryAction) String() string { return string(a) }

func (a InventoryAction) IsValid() bool {
	switch a {
	case InventoryActionRegister, InventoryActionSell, InventoryActionUpdate:
		return true
	}
	return false
}

// Channel is the sales channel an order came through.
type Channel string

const (
	ChannelInstagram Channel = "Instagram"
	ChannelNaver     Channel = "Naver"
	ChannelOffline   Channel = "Offline"
)

// DefaultChannel is used when a sale does not name its channel.
const DefaultChannel = ChannelOffline

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelInstagram, ChannelNaver, ChannelOffline:
		return true
	}
	return false
}

// OrDefault returns c when valid, DefaultChannel otherwise.
func (c Channel) OrDefault() Channel {
	if c.IsValid() {
		return c
	}
	return DefaultChannel
}

// OrderStatus is the payment/fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory string

const (
	ExpenseCategoryMaterial  ExpenseCategory = "material"
	ExpenseCategoryShipping  ExpenseCategory = "shipping"
	ExpenseCategoryMarketing ExpenseCategory = "marketing"
	ExpenseCategoryEtc       ExpenseCategory = "etc"
)

func (c ExpenseCategory) String() string { return string(c) }

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryMaterial, ExpenseCategoryShipping, ExpenseCategoryMarketing, ExpenseCategoryEtc:
		return true
	}
	return false
}

// OrDefault returns c when valid, ExpenseCategoryEtc otherwise.
func (c ExpenseCategory) OrDefault() ExpenseCategory {
	if c.IsValid() {
		return c
	}
	return ExpenseCategoryEtc
}

// InquiryStatus is the lifecycle state of a customer-service inquiry.
// Any status may move to any other.
type InquiryStatus string

const (
	InquiryStatusOpen       InquiryStatus = "open"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusWaiting    InquiryStatus = "waiting"
	InquiryStatusResolved   InquiryStatus = "resolved"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// InquiryStatuses lists every valid status in display order.
var InquiryStatuses = []InquiryStatus{
	InquiryStatusOpen,
	InquiryStatusInProgress,
	InquiryStatusWaiting,
	InquiryStatusResolved,
	InquiryStatusClosed,
}

// ActiveInquiryStatuses are the statuses that still need attention.
var ActiveInquiryStatuses = []InquiryStatus{
	InquiryStatusOpen,
	InquiryStatusInProgress,
	InquiryStatusWaiting,
}

func (s InquiryStatus) String() string { return string(s) }

func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusOpen, InquiryStatusInProgress, InquiryStatusWaiting,
		InquiryStatusResolved, InquiryStatusClosed:
		return true
	}
	return false
}

// IsActive reports whether s is one of ActiveInquiryStatuses.
func (s InquiryStatus) IsActive() bool {
	switch s {
	case InquiryStatusOpen, InquiryStatusInProgress, InquiryStatusWaiting:
		return true
	}
	return false
}

// ParseInquiryStatus normalizes s (trim, lower case) and validates it.
func ParseInquiryStatus(s string) (InquiryStatus, bool) {
	st := InquiryStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// OpsLogKind classifies an operations log entry.
type OpsLogKind string

const (
	OpsLogKindNote     OpsLogKind = "note"
	OpsLogKindRequest  OpsLogKind = "request"
	OpsLogKindReminder OpsLogKind = "reminder"
)

func (k OpsLogKind) String() string { return string(k) }

func (k OpsLogKind) IsValid() bool {
	switch k {
	case OpsLogKindNote, OpsLogKindRequest, OpsLogKindReminder:
		return true
	}
	return false
}

// ParseOpsLogKind normalizes s (trim, lower case) and validates it.
func ParseOpsLogKind(s string) (OpsLogKind, bool) {
	k := OpsLogKind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.IsValid()
}
