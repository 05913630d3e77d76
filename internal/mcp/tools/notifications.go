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

// GetNotificationsParams defines the arguments for the get_notifications tool
type GetNotificationsParams struct {
	UnreadOnly bool `json:"unread_only,omitempty" jsonschema:"Only include unread notifications"`
	Page       int  `json:"page,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize   int  `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
}

// GetUnreadNotificationCountParams defines the arguments for the get_unread_notification_count tool
type GetUnreadNotificationCountParams struct{}

// MarkNotificationReadParams defines the arguments for the mark_notification_read tool
type MarkNotificationReadParams struct {
	NotificationID string `json:"notification_id" jsonschema:"Notification identifier from get_notifications"`
}

// MarkAllNotificationsReadParams defines the arguments for the mark_all_notifications_read tool
type MarkAllNotificationsReadParams struct{}

type notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

type notificationPage struct {
	Items      []notification `json:"items"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
}

type notificationTools struct {
	deps Deps
}

func registerNotificationTools(server *sdkmcp.Server, deps Deps) {
	t := notificationTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_notifications",
		Description: "List notifications, newest first, optionally unread only.",
	}, t.getNotifications)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_unread_notification_count",
		Description: "Count unread notifications.",
	}, t.getUnreadCount)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_notification_read",
		Description: "Mark one notification as read by ID.",
	}, t.markRead)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_all_notifications_read",
		Description: "Mark every notification as read.",
	}, t.markAllRead)
}

func (t notificationTools) getNotifications(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetNotificationsParams) (*sdkmcp.CallToolResult, any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageOrDefault(params.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(params.PageSize)))
	if params.UnreadOnly {
		query.Set("unreadOnly", "true")
	}

	env, err := t.deps.Client.Get(ctx, "/api/notifications", query)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch notifications", env), nil, nil
	}

	var page notificationPage
	if err := env.Decode(&page); err != nil {
		return nil, nil, err
	}

	return textResult(renderNotifications(page)), nil, nil
}

func (t notificationTools) getUnreadCount(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetUnreadNotificationCountParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Get(ctx, "/api/notifications/unread-count", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("count unread notifications", env), nil, nil
	}

	var payload struct {
		Count int `json:"count"`
	}
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	return textResult(fmt.Sprintf("You have %d unread notification(s).", payload.Count)), nil, nil
}

func (t notificationTools) markRead(ctx context.Context, _ *sdkmcp.CallToolRequest, params *MarkNotificationReadParams) (*sdkmcp.CallToolResult, any, error) {
	if params.NotificationID == "" {
		return nil, nil, errors.New("notification_id is required")
	}

	env, err := t.deps.Client.Put(ctx, "/api/notifications/"+params.NotificationID+"/read", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("mark notification read", env), nil, nil
	}

	return textResult(fmt.Sprintf("Notification %s marked as read.", params.NotificationID)), nil, nil
}

func (t notificationTools) markAllRead(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *MarkAllNotificationsReadParams) (*sdkmcp.CallToolResult, any, error) {
	env, err := t.deps.Client.Put(ctx, "/api/notifications/read-all", nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("mark all notifications read", env), nil, nil
	}

	var payload struct {
		Count int `json:"count"`
	}
	if err := env.Decode(&payload); err != nil {
		return nil, nil, err
	}

	return textResult(fmt.Sprintf("%d notification(s) marked as read.", payload.Count)), nil, nil
}

func renderNotifications(page notificationPage) string {
	if len(page.Items) == 0 {
		return "No notifications found."
	}

	blocks := make([]string, 0, len(page.Items)+1)
	blocks = append(blocks, fmt.Sprintf("Found %d notification(s), page %d:", page.TotalCount, page.Page))
	for _, n := range page.Items {
		var b strings.Builder
		marker := ""
		if !n.IsRead {
			marker = " [unread]"
		}
		fmt.Fprintf(&b, "%s%s\n  ID: %s", orNA(n.Title), marker, n.ID)
		if n.Message != "" {
			fmt.Fprintf(&b, "\n  %s", truncate(n.Message, snippetBudget))
		}
		if n.CreatedAt != "" {
			fmt.Fprintf(&b, "\n  Received: %s", formatDateTime(n.CreatedAt))
		}
		blocks = append(blocks, b.String())
	}
	return joinBlocks(blocks)
}
