// Package handlers exposes the calendrical engines as MCP tools. Every
// handler follows the same contract: parse and validate arguments at the
// boundary, call exactly one engine operation, and render its result as
// indented JSON text. Engine failures become tool error results, never
// transport errors.
package handlers

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

// jsonResult marshals a payload into a text tool result.
func jsonResult(payload interface{}) *mcp.CallToolResult {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to encode result: " + err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

// errResult renders an engine error as a tool error result.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// dateArg extracts and validates a required date argument.
func dateArg(req mcp.CallToolRequest, key string) (lunar.Date, error) {
	s, err := req.RequireString(key)
	if err != nil {
		return lunar.Date{}, err
	}
	return lunar.ParseDate(s)
}

// cultureArg extracts an optional culture argument, defaulting to chinese.
func cultureArg(req mcp.CallToolRequest) (lunar.Culture, error) {
	s := req.GetString("culture", "")
	return lunar.ParseCulture(s)
}
