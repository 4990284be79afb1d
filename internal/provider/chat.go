// Package provider holds backend-neutral types for text-generation clients.
// Adapters under internal/adapter/provider translate them to a concrete API.
package provider

import (
	"context"
	"encoding/json"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one conversation turn.
//
//   - RoleUser: Text.
//   - RoleAssistant: Text and/or ToolCalls, as returned by the model.
//   - RoleTool: Result, answering one earlier ToolCall.
type Message struct {
	Role      Role
	Text      string
	ToolCalls []ToolCall
	Result    *ToolResult
}

// ToolCall is a structured tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolResult carries the textual outcome of a ToolCall back to the model.
type ToolResult struct {
	CallID  string
	Content string
	IsError bool
}

// UserMessage builds a user turn.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// AssistantMessage builds an assistant turn from a model response.
func AssistantMessage(r *ChatResponse) Message {
	return Message{Role: RoleAssistant, Text: r.Text, ToolCalls: r.ToolCalls}
}

// ToolMessage builds a tool-result turn.
func ToolMessage(callID, content string, isError bool) Message {
	return Message{Role: RoleTool, Result: &ToolResult{CallID: callID, Content: content, IsError: isError}}
}

// Property describes one tool parameter.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Schema is the object schema of a tool's arguments.
type Schema struct {
	Properties map[string]Property
	Required   []string
}

// ToolSpec declares a tool the model may call.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  Schema
}

// ChatRequest is one completion call.
type ChatRequest struct {
	System    string
	Messages  []Message
	Tools     []ToolSpec
	MaxTokens int // 0 means the client default
}

// StopReason explains why the model stopped generating.
type StopReason string

const (
	StopEndTurn   StopReason = "end_turn"
	StopToolUse   StopReason = "tool_use"
	StopMaxTokens StopReason = "max_tokens"
)

// ChatResponse is the model's answer: free text, tool calls, or both.
type ChatResponse struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason StopReason
}

// ChatClient is a text-generation backend.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
