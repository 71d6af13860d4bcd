package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/logging"
)

// Tool names accepted by POST /mcp/tools/call.
const (
	ToolCalculateImpact         = "calculate_impact"
	ToolSourcingRecommendations = "sourcing_recommendations"
	ToolOrganicComparison       = "organic_comparison"
	ToolPlantAlternatives       = "plant_alternatives"
	ToolWasteTips               = "waste_tips"
	ToolCanteenProfile          = "canteen_profile"
)

// ToolInfo describes one MCP tool for GET /mcp/tools.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (any, error)

type tool struct {
	description string
	handle      toolHandler
}

// SourcingParams are the arguments of sourcing_recommendations.
type SourcingParams struct {
	Month int `json:"month" description:"Month index, 0 = January"`
}

// ItemParams are the arguments of organic_comparison.
type ItemParams struct {
	Item string `json:"item" description:"Food item name, e.g. Oksekød"`
}

// MeatParams are the arguments of plant_alternatives.
type MeatParams struct {
	Meat string `json:"meat" description:"Meat product to substitute"`
}

// CategoryParams are the arguments of waste_tips.
type CategoryParams struct {
	Category string `json:"category,omitempty" description:"Tip category; empty for all"`
}

// CanteenParams are the arguments of canteen_profile.
type CanteenParams struct {
	ID int `json:"id" description:"Reference canteen ID"`
}

func (s *Server) tools() map[string]tool {
	return map[string]tool{
		ToolCalculateImpact: {
			description: "Calculate the annual CO2e footprint of a canteen and rank reduction measures",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p impact.CanteenParameters
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				return s.calculateImpact(ctx, p)
			},
		},
		ToolSourcingRecommendations: {
			description: "Recommend domestic or imported sourcing for each produce item in a month",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p SourcingParams
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				return s.sourcingRecommendations(ctx, p.Month)
			},
		},
		ToolOrganicComparison: {
			description: "Compare the organic and conventional footprint of a food item",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p ItemParams
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				if p.Item == "" {
					return nil, fmt.Errorf("%w: item is required", errBadRequest)
				}
				return s.organicComparison(ctx, p.Item)
			},
		},
		ToolPlantAlternatives: {
			description: "List plant-based alternatives to a meat product",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p MeatParams
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				if p.Meat == "" {
					return nil, fmt.Errorf("%w: meat is required", errBadRequest)
				}
				return s.plantAlternatives(ctx, p.Meat)
			},
		},
		ToolWasteTips: {
			description: "List food waste reduction tips, optionally for one category",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p CategoryParams
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				return s.wasteTips(ctx, p.Category)
			},
		},
		ToolCanteenProfile: {
			description: "Derive calculation parameters and the measured baseline for a reference canteen",
			handle: func(ctx context.Context, req *protocol.CallToolRequest) (any, error) {
				var p CanteenParams
				if err := extractParams(req, &p); err != nil {
					return nil, err
				}
				return s.canteenProfile(ctx, p.ID)
			},
		},
	}
}

// extractParams converts the request arguments into target.
func extractParams(req *protocol.CallToolRequest, target any) error {
	raw, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: marshalling arguments: %w", errBadRequest, err)
	}
	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: invalid arguments: %w", errBadRequest, err)
	}
	return nil
}

// GET /mcp/tools
func (s *Server) handleListTools(c *gin.Context) {
	tools := s.tools()
	out := make([]ToolInfo, 0, len(tools))
	for name, t := range tools {
		out = append(out, ToolInfo{Name: name, Description: t.description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	c.JSON(http.StatusOK, gin.H{"tools": out})
}

// POST /mcp/tools/call  {"name": "waste_tips", "arguments": {...}}
//
// Tool failures are reported in the result with isError set; only an
// undecodable request or an unknown tool produce an HTTP error.
func (s *Server) handleCallTool(c *gin.Context) {
	var req protocol.CallToolRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err))
		return
	}

	t, ok := s.tools()[req.Name]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("unknown tool: %s", req.Name)})
		return
	}

	ctx := c.Request.Context()
	out, err := t.handle(ctx, &req)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("operation", "mcp_tool_call").
			Str("tool", req.Name).
			Err(err).
			Msg("tool call failed")
		c.JSON(http.StatusOK, toolError(err))
		return
	}

	result, err := toolResult(out)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func toolResult(data any) (*protocol.CallToolResult, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(raw),
			},
		},
	}, nil
}

func toolError(err error) *protocol.CallToolResult {
	raw, _ := json.Marshal(errorBody(err))
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(raw),
			},
		},
		IsError: true,
	}
}
