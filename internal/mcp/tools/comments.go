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

// GetPostCommentsParams defines the arguments for the get_post_comments tool
type GetPostCommentsParams struct {
	PostID   string `json:"post_id" jsonschema:"Community post identifier"`
	Page     int    `json:"page,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize int    `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
}

// AddPostCommentParams defines the arguments for the add_post_comment tool
type AddPostCommentParams struct {
	PostID  string `json:"post_id" jsonschema:"Community post identifier"`
	Content string `json:"content" jsonschema:"Comment text"`
}

// DeletePostCommentParams defines the arguments for the delete_post_comment tool
type DeletePostCommentParams struct {
	CommentID string `json:"comment_id" jsonschema:"Comment identifier to delete"`
}

type postComment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type commentPage struct {
	Items      []postComment `json:"items"`
	TotalCount int           `json:"totalCount"`
	Page       int           `json:"page"`
}

type commentTools struct {
	deps Deps
}

func registerCommentTools(server *sdkmcp.Server, deps Deps) {
	t := commentTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_post_comments",
		Description: "List comments on a community post, newest first.",
	}, t.getComments)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_post_comment",
		Description: "Add a comment to a community post.",
	}, t.addComment)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_post_comment",
		Description: "Delete one of the user's own comments.",
	}, t.deleteComment)
}

func (t commentTools) getComments(ctx context.Context, _ *sdkmcp.CallToolRequest, params *GetPostCommentsParams) (*sdkmcp.CallToolResult, any, error) {
	if params.PostID == "" {
		return nil, nil, errors.New("post_id is required")
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(pageOrDefault(params.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(params.PageSize)))

	env, err := t.deps.Client.Get(ctx, "/api/community/posts/"+params.PostID+"/comments", query)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("fetch comments", env), nil, nil
	}

	var page commentPage
	if err := env.Decode(&page); err != nil {
		return nil, nil, err
	}

	return textResult(renderComments(page)), nil, nil
}

func (t commentTools) addComment(ctx context.Context, _ *sdkmcp.CallToolRequest, params *AddPostCommentParams) (*sdkmcp.CallToolResult, any, error) {
	if params.PostID == "" || params.Content == "" {
		return nil, nil, errors.New("post_id and content are required")
	}

	env, err := t.deps.Client.Post(ctx, "/api/community/posts/"+params.PostID+"/comments", map[string]string{
		"content": params.Content,
	})
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("add comment", env), nil, nil
	}

	return textResult(fmt.Sprintf("Comment added to post %s.", params.PostID)), nil, nil
}

func (t commentTools) deleteComment(ctx context.Context, _ *sdkmcp.CallToolRequest, params *DeletePostCommentParams) (*sdkmcp.CallToolResult, any, error) {
	if params.CommentID == "" {
		return nil, nil, errors.New("comment_id is required")
	}

	env, err := t.deps.Client.Delete(ctx, "/api/community/comments/"+params.CommentID)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("delete comment", env), nil, nil
	}

	return textResult(fmt.Sprintf("Comment %s deleted.", params.CommentID)), nil, nil
}

func renderComments(page commentPage) string {
	if len(page.Items) == 0 {
		return "No comments found."
	}

	blocks := make([]string, 0, len(page.Items)+1)
	blocks = append(blocks, fmt.Sprintf("Found %d comment(s), page %d:", page.TotalCount, page.Page))
	for _, comment := range page.Items {
		var b strings.Builder
		fmt.Fprintf(&b, "%s", orNA(comment.Author))
		if comment.CreatedAt != "" {
			fmt.Fprintf(&b, " (%s)", formatDateTime(comment.CreatedAt))
		}
		fmt.Fprintf(&b, "\n  %s", truncate(comment.Content, snippetBudget))
		fmt.Fprintf(&b, "\n  ID: %s", comment.ID)
		blocks = append(blocks, b.String())
	}
	return joinBlocks(blocks)
}
