package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCoffeeChatProfilesParams defines the arguments for the get_coffee_chat_profiles tool
type GetCoffeeChatProfilesParams struct {
	Industry string `json:"industry,omitempty" jsonschema:"Filter profiles by industry"`
	Page     int    `json:"page,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize int    `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
}

// GetMyCoffeeChatProfileParams defines the arguments for the get_my_coffee_chat_profile tool
type GetMyCoffeeChatProfileParams struct{}

// UpdateCoffeeChatProfileParams defines the arguments for the update_coffee_chat_profile tool
type UpdateCoffeeChatProfileParams struct {
	Name      string `json:"name,omitempty" jsonschema:"Display name"`
	Role      string `json:"role,omitempty" jsonschema:"Current role or title"`
	Company   string `json:"company,omitempty" jsonschema:"Current company"`
	Industry  string `json:"industry,omitempty" jsonschema:"Industry tag"`
	Bio       string `json:"bio,omitempty" jsonschema:"Short bio shown to other members"`
	Available bool   `json:"available,omitempty" jsonschema:"Whether the profile is open to coffee chat requests"`
}

// SendCoffeeChatRequestParams defines the arguments for the send_coffee_chat_request tool
type SendCoffeeChatRequestParams struct {
	ProfileID string `json:"profile_id" jsonschema:"Target profile identifier from get_coffee_chat_profiles"`
	Message   string `json:"message,omitempty" jsonschema:"Optional introduction message"`
}

// GetCoffeeChatRequestsParams defines the arguments for the get_coffee_chat_requests tool
type GetCoffeeChatRequestsParams struct {
	Direction string `json:"direction,omitempty" jsonschema:"Which requests to list: sent or received (default received)"`
	Page      int    `json:"page,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
}

// RespondCoffeeChatRequestParams defines the arguments for the respond_coffee_chat_request tool
type RespondCoffeeChatRequestParams struct {
	RequestID string `json:"request_id" jsonschema:"Request identifier from get_coffee_chat_requests"`
	Accept    bool   `json:"accept" jsonschema:"true to accept, false to decline"`
}

type coffeeProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Bio      string `json:"bio"`
}

type coffeeProfilePage struct {
	Items      []coffeeProfile `json:"items"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
}

type coffeeRequest struct {
	ID        string `json:"id"`
	FromName  string `json:"fromName"`
	ToName    string `json:"toName"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type coffeeRequestPage struct {
	Items      []coffeeRequest `json:"items"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
}

type coffeeChatTools struct {
	deps Deps
}

func registerCoffeeChatTools(server *sdkmcp.Server, deps Deps) {
	t := coffeeChatTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_coffee_chat_profiles",
		Description: "Browse community members open to networking coffee chats, optionally filtered by industry.",
	}, t.getProfiles)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_my_coffee_chat_profile",
		Description: "Show the user's own coffee chat profile.",
	}, t.getMyProfile)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_coffee_chat_profile",
		Description: "Update the user's coffee chat profile. Only the supplied fields are changed.",
	}, t.updateProfile)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "send_coffee_chat_request",
		Description: "Send a coffee chat request to another member's profile.",
	}, t.sendRequest)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_coffee_chat_requests",
		Description: "List coffee chat requests. Directions: sent, received.",
	}, t.getRequests)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "respond_coffee_chat_request",
		Description: "Accept or decline a received coffee chat request.",
	}, t.respondRequest)
}

func (t coffeeChatTools) getProfiles(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetCoffeeChatProfilesParams) (*sdkmcp.CallToolResult, any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageOrDefault(params.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(params.PageSize)))
	if params.Industry != "" {
		query.Set("industry", params.Industry)
	}

	env, err := t.deps.Client.Get(ctx, "/api/coffee-chats/profiles", query)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch coffee chat profiles", env), nil, nil
	}

	var page coffeeProfilePage
	if err := env.Decode(&page); err != nil {
		return nil, nil, err
	}

	return textResult(renderCoffeeProfiles(page)), nil, nil
}

func (t coffeeChatTools) getMyProfile(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetMyCoffeeChatProfileParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/coffee-chats/profiles/me", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch your coffee chat profile", env), nil, nil
	}

	var profile coffeeProfile
	if err := env.Decode(&profile); err != nil {
		return nil, nil, err
	}

	if profile.ID == "" {
		return textResult("You have no coffee chat profile yet. Use update_coffee_chat_profile to create one."), nil, nil
	}
	return textResult(renderCoffeeProfile(profile)), nil, nil
}

func (t coffeeChatTools) updateProfile(ctx context.Context, _ *sdkmcp.CallToolRequest, params *UpdateCoffeeChatProfileParams) (*sdkmcp.CallToolResult, any, error) {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Role != "" {
		body["role"] = params.Role
	}
	if params.Company != "" {
		body["company"] = params.Company
	}
	if params.Industry != "" {
		body["industry"] = params.Industry
	}
	if params.Bio != "" {
		body["bio"] = params.Bio
	}
	if params.Available {
		body["available"] = true
	}

	if len(body) == 0 {
		return textResult("Nothing to update: no fields were supplied."), nil, nil
	}

	env, err := t.deps.Client.Put(ctx, "/api/coffee-chats/profiles/me", body)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("update coffee chat profile", env), nil, nil
	}

	return textResult("Coffee chat profile updated."), nil, nil
}

func (t coffeeChatTools) sendRequest(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SendCoffeeChatRequestParams) (*sdkmcp.CallToolResult, any, error) {
	if params.ProfileID == "" {
		return nil, nil, errors.New("profile_id is required")
	}

	body := map[string]string{"profileId": params.ProfileID}
	if params.Message != "" {
		body["message"] = params.Message
	}

	env, err := t.deps.Client.Post(ctx, "/api/coffee-chats/requests", body)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("send coffee chat request", env), nil, nil
	}

	return textResult(fmt.Sprintf("Coffee chat request sent to profile %s.", params.ProfileID)), nil, nil
}

func (t coffeeChatTools) getRequests(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetCoffeeChatRequestsParams) (*sdkmcp.CallToolResult, any, error) {
	direction := params.Direction
	if direction == "" {
		direction = "received"
	}
	if direction != "sent" && direction != "received" {
		return textResult(fmt.Sprintf("Unknown direction %q. Valid options: sent, received.", params.Direction)), nil, nil
	}

	query := url.Values{}
	query.Set("direction", direction)
	query.Set("page", strconv.Itoa(pageOrDefault(params.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(params.PageSize)))

	env, err := t.deps.Client.Get(ctx, "/api/coffee-chats/requests", query)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch coffee chat requests", env), nil, nil
	}

	var page coffeeRequestPage
	if err := env.Decode(&page); err != nil {
		return nil, nil, err
	}

	return textResult(renderCoffeeRequests(direction, page)), nil, nil
}

func (t coffeeChatTools) respondRequest(ctx context.Context, _ *sdkmcp.CallToolRequest, params *RespondCoffeeChatRequestParams) (*sdkmcp.CallToolResult, any, error) {
	if params.RequestID == "" {
		return nil, nil, errors.New("request_id is required")
	}

	env, err := t.deps.Client.Put(ctx, "/api/coffee-chats/requests/"+params.RequestID+"/respond", map[string]bool{
		"accept": params.Accept,
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("respond to coffee chat request", env), nil, nil
	}

	verdict := "declined"
	if params.Accept {
		verdict = "accepted"
	}
	return textResult(fmt.Sprintf("Coffee chat request %s %s.", params.RequestID, verdict)), nil, nil
}

func renderCoffeeProfiles(page coffeeProfilePage) string {
	if len(page.Items) == 0 {
		return "No coffee chat profiles found."
	}

	blocks := make([]string, 0, len(page.Items)+1)
	blocks = append(blocks, fmt.Sprintf("Found %d profile(s), page %d:", page.TotalCount, page.Page))
	for _, profile := range page.Items {
		blocks = append(blocks, renderCoffeeProfile(profile))
	}
	return joinBlocks(blocks)
}

func renderCoffeeProfile(profile coffeeProfile) string {
	var b strings.Builder

	b.WriteString(orNA(profile.Name))
	switch {
	case profile.Role != "" && profile.Company != "":
		fmt.Fprintf(&b, " - %s at %s", profile.Role, profile.Company)
	case profile.Role != "":
		fmt.Fprintf(&b, " - %s", profile.Role)
	case profile.Company != "":
		fmt.Fprintf(&b, " - %s", profile.Company)
	}
	fmt.Fprintf(&b, "\n  ID: %s", profile.ID)
	if profile.Industry != "" {
		fmt.Fprintf(&b, "\n  Industry: %s", profile.Industry)
	}
	if profile.Bio != "" {
		fmt.Fprintf(&b, "\n  Bio: %s", truncate(profile.Bio, bioBudget))
	}

	return b.String()
}

func renderCoffeeRequests(direction string, page coffeeRequestPage) string {
	if len(page.Items) == 0 {
		return fmt.Sprintf("No %s coffee chat requests found.", direction)
	}

	blocks := make([]string, 0, len(page.Items)+1)
	blocks = append(blocks, fmt.Sprintf("Found %d %s request(s), page %d:", page.TotalCount, direction, page.Page))
	for _, req := range page.Items {
		var b strings.Builder
		counterpart := req.FromName
		if direction == "sent" {
			counterpart = req.ToName
		}
		fmt.Fprintf(&b, "%s (%s)\n  ID: %s", orNA(counterpart), orNA(req.Status), req.ID)
		if req.Message != "" {
			fmt.Fprintf(&b, "\n  Message: %s", truncate(req.Message, snippetBudget))
		}
		if req.CreatedAt != "" {
			fmt.Fprintf(&b, "\n  Sent: %s", formatDate(req.CreatedAt))
		}
		blocks = append(blocks, b.String())
	}
	return joinBlocks(blocks)
}
