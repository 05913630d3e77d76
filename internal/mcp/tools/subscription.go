package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetSubscriptionStatusParams defines the arguments for the get_subscription_status tool
type GetSubscriptionStatusParams struct{}

// GetSubscriptionPlansParams defines the arguments for the get_subscription_plans tool
type GetSubscriptionPlansParams struct{}

type subscriptionStatus struct {
	Plan               string `json:"plan"`
	IsActive           bool   `json:"isActive"`
	RenewsAt           string `json:"renewsAt"`
	AICreditsRemaining int    `json:"aiCreditsRemaining"`
}

type subscriptionPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

type subscriptionTools struct {
	deps Deps
}

func registerSubscriptionTools(server *sdkmcp.Server, deps Deps) {
	t := subscriptionTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_subscription_status",
		Description: "Show the user's current subscription plan and remaining AI credits.",
	}, t.getStatus)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_subscription_plans",
		Description: "List the available subscription plans.",
	}, t.getPlans)
}

func (t subscriptionTools) getStatus(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetSubscriptionStatusParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/subscription/status", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch subscription status", env), nil, nil
	}

	var payload subscriptionStatus
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	var b strings.Builder
	state := "inactive"
	if payload.IsActive {
		state = "active"
	}
	fmt.Fprintf(&b, "Plan: %s (%s)", orNA(payload.Plan), state)
	fmt.Fprintf(&b, "\nAI credits remaining: %d", payload.AICreditsRemaining)
	if payload.RenewsAt != "" {
		fmt.Fprintf(&b, "\nRenews: %s", formatDate(payload.RenewsAt))
	}

	return textResult(b.String()), nil, nil
}

func (t subscriptionTools) getPlans(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetSubscriptionPlansParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/subscription/plans", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch subscription plans", env), nil, nil
	}

	var plans []subscriptionPlan
	if err := env.Decode(&plans); err != nil {
		return nil, nil, err
	}

	if len(plans) == 0 {
		return textResult("No subscription plans found."), nil, nil
	}

	blocks := make([]string, 0, len(plans))
	for _, plan := range plans {
		var b strings.Builder
		fmt.Fprintf(&b, "%s - %s", orNA(plan.Name), orNA(plan.Price))
		if len(plan.Features) > 0 {
			fmt.Fprintf(&b, "\n%s", numberedList(plan.Features))
		}
		blocks = append(blocks, b.String())
	}

	return textResult(joinBlocks(blocks)), nil, nil
}
