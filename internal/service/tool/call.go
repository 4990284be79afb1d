package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/speedsales/studio-backend/internal/domain"
)

// Tool names exposed to the model.
const (
	NameManageInventory = "manage_inventory"
	NameLogExpense      = "log_expense"
	NameLogCSInquiry    = "log_cs_inquiry"
	NameCheckInventory  = "check_inventory"
	NameCheckCSStatus   = "check_cs_status"
)

// ErrUnknownTool is returned by Parse for names outside the registry.
var ErrUnknownTool = errors.New("unknown tool")

// ArgumentError is an invalid or missing tool argument. Its message is sent
// back to the model verbatim.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

func (e *ArgumentError) Unwrap() error { return domain.ErrValidation }

func argErr(msg string) error { return &ArgumentError{Msg: msg} }

// Call is a parsed, validated tool invocation. The set of implementations is closed.
type Call interface {
	ToolName() string
	isCall()
}

// ManageInventory registers a product, sells from stock or restocks.
type ManageInventory struct {
	Action       domain.InventoryAction
	ProductName  string
	UniqueID     string
	Quantity     int
	CustomerName string
	Channel      domain.Channel
}

// LogExpense records an expense dated today.
type LogExpense struct {
	Description string
	Amount      int64
	Category    domain.ExpenseCategory
}

// LogCSInquiry records a customer-service ticket.
type LogCSInquiry struct {
	CustomerName string
	Content      string
	ProductName  *string
	Status       domain.InquiryStatus
	AIReply      *string
}

// CheckInventory reads stock levels. An empty ProductName means the
// lowest-stock overview.
type CheckInventory struct {
	ProductName string
}

// CheckCSStatus reads inquiry counts. Filter is lowercased; "active" covers
// every unfinished status.
type CheckCSStatus struct {
	Filter string
}

const activeFilter = "active"

// maxExpenseAmount bounds log_expense amounts well inside BIGINT.
const maxExpenseAmount = 1e15

func (ManageInventory) ToolName() string { return NameManageInventory }
func (LogExpense) ToolName() string      { return NameLogExpense }
func (LogCSInquiry) ToolName() string    { return NameLogCSInquiry }
func (CheckInventory) ToolName() string  { return NameCheckInventory }
func (CheckCSStatus) ToolName() string   { return NameCheckCSStatus }

func (ManageInventory) isCall() {}
func (LogExpense) isCall()      {}
func (LogCSInquiry) isCall()    {}
func (CheckInventory) isCall()  {}
func (CheckCSStatus) isCall()   {}

// Parse decodes raw model arguments for the named tool and validates them.
// Unknown names yield ErrUnknownTool; bad arguments yield *ArgumentError.
func Parse(name string, raw json.RawMessage) (Call, error) {
	switch name {
	case NameManageInventory:
		return parseManageInventory(raw)
	case NameLogExpense:
		return parseLogExpense(raw)
	case NameLogCSInquiry:
		return parseLogCSInquiry(raw)
	case NameCheckInventory:
		return parseCheckInventory(raw)
	case NameCheckCSStatus:
		return parseCheckCSStatus(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

func decode(name string, raw json.RawMessage, v any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return argErr(fmt.Sprintf("Error: invalid arguments for %s.", name))
	}
	return nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func strOrNil(p *string) *string {
	s := str(p)
	if s == "" {
		return nil
	}
	return &s
}

func parseManageInventory(raw json.RawMessage) (Call, error) {
	var a struct {
		Action       *string      `json:"action"`
		ProductName  *string      `json:"product_name"`
		UniqueID     *string      `json:"unique_id"`
		Quantity     *json.Number `json:"quantity"`
		CustomerName *string      `json:"customer_name"`
		Channel      *string      `json:"channel"`
	}
	if err := decode(NameManageInventory, raw, &a); err != nil {
		return nil, err
	}

	c := ManageInventory{
		Action:       domain.InventoryAction(strings.ToLower(str(a.Action))),
		ProductName:  str(a.ProductName),
		UniqueID:     str(a.UniqueID),
		CustomerName: str(a.CustomerName),
		Channel:      domain.Channel(str(a.Channel)).OrDefault(),
	}
	if c.CustomerName == "" {
		c.CustomerName = domain.DefaultCustomerName
	}

	if c.ProductName == "" {
		return nil, argErr("Error: product_name is required.")
	}
	if !c.Action.IsValid() {
		return nil, argErr("Error: action must be register, sell, or update.")
	}
	qty, ok := wholeNumber(a.Quantity)
	if !ok || qty < 1 {
		return nil, argErr("Error: quantity must be a positive integer.")
	}
	c.Quantity = int(qty)
	return c, nil
}

func parseLogExpense(raw json.RawMessage) (Call, error) {
	var a struct {
		Description *string      `json:"description"`
		Amount      *json.Number `json:"amount"`
		Category    *string      `json:"category"`
	}
	if err := decode(NameLogExpense, raw, &a); err != nil {
		return nil, err
	}

	c := LogExpense{
		Description: str(a.Description),
		Category:    domain.ExpenseCategory(strings.ToLower(str(a.Category))).OrDefault(),
	}
	if c.Description == "" {
		return nil, argErr("Error: description is required for expense.")
	}
	if a.Amount != nil {
		f, err := a.Amount.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, argErr("Error: amount must be a number.")
		}
		f = math.Round(math.Abs(f))
		if f > maxExpenseAmount {
			return nil, argErr("Error: amount must be a non-negative number.")
		}
		c.Amount = int64(f)
	}
	return c, nil
}

func parseLogCSInquiry(raw json.RawMessage) (Call, error) {
	var a struct {
		CustomerName *string `json:"customer_name"`
		Content      *string `json:"content"`
		ProductName  *string `json:"product_name"`
		Status       *string `json:"status"`
		AIReply      *string `json:"ai_reply"`
	}
	if err := decode(NameLogCSInquiry, raw, &a); err != nil {
		return nil, err
	}

	c := LogCSInquiry{
		CustomerName: str(a.CustomerName),
		Content:      str(a.Content),
		ProductName:  strOrNil(a.ProductName),
		Status:       domain.InquiryStatusOpen,
		AIReply:      strOrNil(a.AIReply),
	}
	if c.CustomerName == "" {
		c.CustomerName = domain.DefaultInquiryCustomer
	}
	if strings.ToLower(str(a.Status)) == string(domain.InquiryStatusResolved) {
		c.Status = domain.InquiryStatusResolved
	}
	if c.Content == "" {
		return nil, argErr("Error: content is required for CS inquiry.")
	}
	return c, nil
}

func parseCheckInventory(raw json.RawMessage) (Call, error) {
	var a struct {
		ProductName *string `json:"product_name"`
	}
	if err := decode(NameCheckInventory, raw, &a); err != nil {
		return nil, err
	}
	name := str(a.ProductName)
	if strings.EqualFold(name, "all") {
		name = ""
	}
	return CheckInventory{ProductName: name}, nil
}

func parseCheckCSStatus(raw json.RawMessage) (Call, error) {
	var a struct {
		StatusFilter *string `json:"status_filter"`
	}
	if err := decode(NameCheckCSStatus, raw, &a); err != nil {
		return nil, err
	}
	f := strings.ToLower(str(a.StatusFilter))
	if f == "" {
		f = activeFilter
	}
	return CheckCSStatus{Filter: f}, nil
}

// wholeNumber truncates n toward zero. Non-numeric input is rejected.
func wholeNumber(n *json.Number) (int64, bool) {
	if n == nil {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return 0, false
	}
	return int64(math.Floor(f)), true
}
