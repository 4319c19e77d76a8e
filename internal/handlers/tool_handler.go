package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/car-service-agent/internal/agent"
	"github.com/BruksfildServices01/car-service-agent/internal/dto"
	"github.com/BruksfildServices01/car-service-agent/internal/httperr"
	"github.com/BruksfildServices01/car-service-agent/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type ToolHandler struct {
	registry *agent.Registry
}

func NewToolHandler(registry *agent.Registry) *ToolHandler {
	return &ToolHandler{registry: registry}
}

// ======================================================
// LIST
// ======================================================

func (h *ToolHandler) List(c *gin.Context) {
	tools := h.registry.List()

	out := make([]dto.ToolDTO, 0, len(tools))
	for _, t := range tools {
		args := t.Arguments
		if args == nil {
			args = []string{}
		}
		out = append(out, dto.ToolDTO{
			Name:        t.Name,
			Description: t.Description,
			Arguments:   args,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// CALL
// ======================================================

// Call runs one tool. Validation and business outcomes are still 200: the
// sentence in "result" is what the agent relays.
func (h *ToolHandler) Call(c *gin.Context) {
	name := c.Param("name")

	if _, ok := h.registry.Get(name); !ok {
		httperr.NotFound(c, "tool_not_found", fmt.Sprintf("Unknown tool %q.", name))
		return
	}

	var raw map[string]any
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&raw); err != nil {
			httperr.BadRequest(c, "invalid_request", "Arguments must be a flat JSON object.")
			return
		}
	}

	args, err := flatten(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.registry.Call(c.Request.Context(), name, args)
	if errors.Is(err, agent.ErrUnknownTool) {
		httperr.NotFound(c, "tool_not_found", fmt.Sprintf("Unknown tool %q.", name))
		return
	}

	httpresp.OK(c, dto.ToolResultDTO{
		Tool:   name,
		Result: result,
	})
}

// flatten turns decoded JSON scalars into strings. Nested values are
// rejected.
func flatten(raw map[string]any) (agent.Args, error) {
	args := make(agent.Args, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			args[k] = ""
		case string:
			args[k] = val
		case float64:
			args[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			args[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("Argument %q must be a string.", k)
		}
	}
	return args, nil
}
