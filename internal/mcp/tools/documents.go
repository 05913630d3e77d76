package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCVsParams defines the arguments for the get_cvs tool
type GetCVsParams struct{}

// GetCoverLettersParams defines the arguments for the get_cover_letters tool
type GetCoverLettersParams struct{}

// GetAllDocumentsParams defines the arguments for the get_all_documents tool
type GetAllDocumentsParams struct{}

// DeleteDocumentParams defines the arguments for the delete_document tool
type DeleteDocumentParams struct {
	Type       string `json:"type" jsonschema:"Document type: cv or cover_letter"`
	DocumentID string `json:"document_id" jsonschema:"Document identifier"`
}

type document struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	CreatedAt string `json:"createdAt"`
}

// Document types map to distinct backend path segments.
var documentTypePaths = map[string]string{
	"cv":           "cvs",
	"cover_letter": "cover-letters",
}

type documentTools struct {
	deps Deps
}

func registerDocumentTools(server *sdkmcp.Server, deps Deps) {
	t := documentTools{deps: deps}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_cvs",
		Description: "List the user's uploaded CVs.",
	}, t.getCVs)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_cover_letters",
		Description: "List the user's uploaded cover letters.",
	}, t.getCoverLetters)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_all_documents",
		Description: "List every uploaded document: CVs and cover letters.",
	}, t.getAllDocuments)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_document",
		Description: "Delete an uploaded document. Types: cv, cover_letter.",
	}, t.deleteDocument)
}

func (t documentTools) getCVs(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetCVsParams) (*sdkmcp.CallToolResult, any, error) {
	docs, failure, err := t.fetchDocuments(ctx, "cvs")
	if err != nil {
		return nil, nil, err
	}
	if failure != nil {
		return failure, nil, nil
	}
	return textResult(renderDocuments("CVs", docs)), nil, nil
}

func (t documentTools) getCoverLetters(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetCoverLettersParams) (*sdkmcp.CallToolResult, any, error) {
	docs, failure, err := t.fetchDocuments(ctx, "cover-letters")
	if err != nil {
		return nil, nil, err
	}
	if failure != nil {
		return failure, nil, nil
	}
	return textResult(renderDocuments("Cover Letters", docs)), nil, nil
}

// getAllDocuments issues two sequential backend calls, CVs first. Either
// call failing fails the whole tool.
func (t documentTools) getAllDocuments(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *GetAllDocumentsParams) (*sdkmcp.CallToolResult, any, error) {
	cvs, failure, err := t.fetchDocuments(ctx, "cvs")
	if err != nil {
		return nil, nil, err
	}
	if failure != nil {
		return failure, nil, nil
	}

	letters, failure, err := t.fetchDocuments(ctx, "cover-letters")
	if err != nil {
		return nil, nil, err
	}
	if failure != nil {
		return failure, nil, nil
	}

	if len(cvs) == 0 && len(letters) == 0 {
		return textResult("No documents found."), nil, nil
	}

	sections := make([]string, 0, 2)
	if len(cvs) > 0 {
		sections = append(sections, renderDocuments("CVs", cvs))
	}
	if len(letters) > 0 {
		sections = append(sections, renderDocuments("Cover Letters", letters))
	}
	return textResult(joinBlocks(sections)), nil, nil
}

func (t documentTools) deleteDocument(ctx context.Context, _ *sdkmcp.CallToolRequest, params *DeleteDocumentParams) (*sdkmcp.CallToolResult, any, error) {
	segment, ok := documentTypePaths[params.Type]
	if !ok {
		return textResult(fmt.Sprintf("Unknown document type %q. Valid options: cv, cover_letter.", params.Type)), nil, nil
	}
	if params.DocumentID == "" {
		return nil, nil, errors.New("document_id is required")
	}

	env, err := t.deps.Client.Delete(ctx, "/api/documents/"+segment+"/"+params.DocumentID)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return failureResult("delete document", env), nil, nil
	}

	return textResult(fmt.Sprintf("Document %s deleted.", params.DocumentID)), nil, nil
}

func (t documentTools) fetchDocuments(ctx context.Context, segment string) ([]document, *sdkmcp.CallToolResult, error) {
	env, err := t.deps.Client.Get(ctx, "/api/documents/"+segment, nil)
	if err != nil {
		return nil, nil, err
	}
	if env.Failed() {
		return nil, failureResult("fetch documents", env), nil
	}

	var docs []document
	if err := env.Decode(&docs); err != nil {
		return nil, nil, err
	}
	return docs, nil, nil
}

func renderDocuments(heading string, docs []document) string {
	if len(docs) == 0 {
		return fmt.Sprintf("%s: none found.", heading)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d):", heading, len(docs))
	for _, doc := range docs {
		fmt.Fprintf(&b, "\n- %s (ID: %s", orNA(doc.FileName), doc.ID)
		if doc.CreatedAt != "" {
			fmt.Fprintf(&b, ", uploaded %s", formatDate(doc.CreatedAt))
		}
		b.WriteString(")")
	}
	return b.String()
}
