package tool

import "github.com/speedsales/studio-backend/internal/provider"

var specs = []provider.ToolSpec{
	{
		Name:        NameManageInventory,
		Description: "Register a new product, record a sale (deducts stock and records an order), or add stock after a restock or correction.",
		Parameters: provider.Schema{
			Properties: map[string]provider.Property{
				"action": {
					Type:        "string",
					Enum:        []string{"register", "sell", "update"},
					Description: "register = new item; sell = sale, deducts stock; update = add stock (restock).",
				},
				"product_name":  {Type: "string", Description: "Product name, e.g. Blue Mug."},
				"unique_id":     {Type: "string", Description: "Optional stable code or SKU. Preferred for lookup when the user gives one."},
				"quantity":      {Type: "integer", Description: "Positive integer: initial stock for register, units sold for sell, units added for update."},
				"customer_name": {Type: "string", Description: "Optional, for sell. Customer named in the note; omit when unknown."},
				"channel": {
					Type:        "string",
					Enum:        []string{"Instagram", "Naver", "Offline"},
					Description: "Optional, for sell. Sales channel when mentioned; defaults to Offline.",
				},
			},
			Required: []string{"action", "product_name", "quantity"},
		},
	},
	{
		Name:        NameLogExpense,
		Description: "Record an expense. Use when the user mentions spending money.",
		Parameters: provider.Schema{
			Properties: map[string]provider.Property{
				"description": {Type: "string", Description: "What the money was spent on."},
				"amount":      {Type: "integer", Description: "Amount in KRW, e.g. 50000."},
				"category": {
					Type:        "string",
					Enum:        []string{"material", "shipping", "marketing", "etc"},
					Description: "Expense category.",
				},
			},
			Required: []string{"description", "amount", "category"},
		},
	},
	{
		Name:        NameLogCSInquiry,
		Description: "Record a customer-service inquiry such as a question, complaint or refund request.",
		Parameters: provider.Schema{
			Properties: map[string]provider.Property{
				"customer_name": {Type: "string", Description: "Customer named in the note, e.g. Kim."},
				"content":       {Type: "string", Description: "The core of the message, e.g. asking about late delivery."},
				"product_name":  {Type: "string", Description: "Product mentioned, if any."},
				"status": {
					Type:        "string",
					Enum:        []string{"open", "resolved"},
					Description: "Defaults to open. Use resolved only when the user says they already replied.",
				},
				"ai_reply": {Type: "string", Description: "Optional short suggested reply to the customer."},
			},
			Required: []string{"customer_name", "content"},
		},
	},
	{
		Name:        NameCheckInventory,
		Description: "Read stock levels. Use when the user asks how much stock there is or which items are running low.",
		Parameters: provider.Schema{
			Properties: map[string]provider.Property{
				"product_name": {Type: "string", Description: "Product name to look up (partial match). Use 'all' or leave empty for the 5 lowest-stock items."},
			},
		},
	},
	{
		Name: NameCheckCSStatus,
		Description: "Read customer-service inquiry counts and the latest inquiry. Use status_filter='active' for unresolved, ongoing or remaining " +
			"inquiries (open + in_progress + waiting). Use a single status only when the user asks for that status.",
		Parameters: provider.Schema{
			Properties: map[string]provider.Property{
				"status_filter": {
					Type:        "string",
					Description: "'active' (default) for open + in_progress + waiting, or one of open, in_progress, waiting, resolved, closed.",
				},
			},
		},
	},
}

// Specs returns the declarations of every tool in the registry.
func Specs() []provider.ToolSpec {
	out := make([]provider.ToolSpec, len(specs))
	copy(out, specs)
	return out
}
