package tool

import (
	"fmt"
	"strings"
)

// Kind classifies a tool result. Each kind renders with its own leading marker.
type Kind int

const (
	KindSuccess Kind = iota
	KindSale
	KindTicket
	KindInfo
	KindError
)

var glyphs = map[Kind]string{
	KindSuccess: "✅",
	KindSale:    "📉",
	KindTicket:  "📝",
	KindInfo:    "📋",
	KindError:   "❌",
}

var kindNames = map[Kind]string{
	KindSuccess: "success",
	KindSale:    "sale",
	KindTicket:  "ticket",
	KindInfo:    "info",
	KindError:   "error",
}

func (k Kind) String() string { return kindNames[k] }

// Glyph returns the leading marker for k.
func (k Kind) Glyph() string { return glyphs[k] }

// SuccessGlyph is the marker used for generic success.
func SuccessGlyph() string { return glyphs[KindSuccess] }

// HasOutcomeGlyph reports whether s starts with any outcome marker.
func HasOutcomeGlyph(s string) bool {
	for _, g := range glyphs {
		if strings.HasPrefix(s, g) {
			return true
		}
	}
	return false
}

// SellResult reports the two writes of a sale separately. StockUpdated without
// OrderRecorded means the stock moved but no order row exists for it.
type SellResult struct {
	StockUpdated  bool
	OrderRecorded bool
}

// Outcome is the result of one tool call, returned to the model in-band.
type Outcome struct {
	Tool string
	Kind Kind
	Text string
	Sell *SellResult
}

// String renders the outcome with its marker.
func (o Outcome) String() string {
	return o.Kind.Glyph() + " " + o.Text
}

// IsError reports whether the call was rejected or failed.
func (o Outcome) IsError() bool { return o.Kind == KindError }

func success(tool, format string, args ...any) Outcome {
	return Outcome{Tool: tool, Kind: KindSuccess, Text: fmt.Sprintf(format, args...)}
}

func info(tool, format string, args ...any) Outcome {
	return Outcome{Tool: tool, Kind: KindInfo, Text: fmt.Sprintf(format, args...)}
}

func failure(tool, format string, args ...any) Outcome {
	return Outcome{Tool: tool, Kind: KindError, Text: fmt.Sprintf(format, args...)}
}
