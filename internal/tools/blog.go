package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"blogsmith-mcp/internal/blogapi"
)

const (
	// defaultLanguage is the language sent when the caller omits one.
	defaultLanguage = "ja"
	// defaultProvider matches the upstream service's effective default.
	defaultProvider = "openrouter"
	// defaultSectionCount is the number of sections requested when the
	// caller omits one.
	defaultSectionCount = 4
)

// GenerateBlogDefinition describes the blog-generation tool for discovery by
// MCP clients.
func GenerateBlogDefinition() mcp.Tool {
	return mcp.NewTool(GenerateBlogName,
		mcp.WithDescription("Generate a blog article through the upstream generation service. May ask clarification questions first."),
		mcp.WithString("fastapi_base_url",
			mcp.Description("Base URL of the generation service; falls back to FASTAPI_BASE_URL"),
		),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Topic keyword for the article"),
			mcp.MinLength(1),
		),
		mcp.WithString("language",
			mcp.Description("Output language code"),
			mcp.DefaultString(defaultLanguage),
		),
		mcp.WithString("target_audience",
			mcp.Description("Intended readership of the article"),
		),
		mcp.WithString("writing_style",
			mcp.Description("Tone or style to write in"),
		),
		mcp.WithNumber("section_count",
			mcp.Description("Number of article sections"),
			mcp.DefaultNumber(defaultSectionCount),
			mcp.Min(1),
			mcp.Max(10),
		),
		mcp.WithString("provider",
			mcp.Description("LLM provider the service should use"),
			mcp.DefaultString(defaultProvider),
		),
		mcp.WithString("model",
			mcp.Description("Model override for the provider"),
		),
		mcp.WithArray("clarification_answers",
			mcp.Description("Answers to a previous clarification round, one per question, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("api_key",
			mcp.Description("API key for the generation service; falls back to FASTAPI_API_KEY"),
		),
	)
}

// GenerateBlog resolves configuration, issues one generation request, and
// formats the classified response. A missing base URL fails fast before any
// network call.
func (r *Registry) GenerateBlog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := req.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(keyword) == "" {
		return mcp.NewToolResultError("keyword must not be empty"), nil
	}

	baseURL := req.GetString("fastapi_base_url", "")
	if baseURL == "" {
		baseURL = r.cfg.BaseURL()
	}
	if baseURL == "" {
		return mcp.NewToolResultError("blog generation error: no base URL configured; pass fastapi_base_url or set the FASTAPI_BASE_URL environment variable"), nil
	}
	apiKey := req.GetString("api_key", "")
	if apiKey == "" {
		apiKey = r.cfg.APIKey()
	}

	genReq := blogapi.GenerateRequest{
		Keyword:              keyword,
		Language:             req.GetString("language", defaultLanguage),
		TargetAudience:       req.GetString("target_audience", ""),
		WritingStyle:         req.GetString("writing_style", ""),
		SectionCount:         req.GetInt("section_count", defaultSectionCount),
		Provider:             req.GetString("provider", defaultProvider),
		Model:                req.GetString("model", ""),
		ClarificationAnswers: req.GetStringSlice("clarification_answers", []string{}),
	}

	client := blogapi.New(baseURL, apiKey, r.http)
	outcome, callErr := client.Generate(ctx, genReq)
	if callErr != nil {
		switch callErr.Kind {
		case blogapi.ErrorStatus:
			msg := fmt.Sprintf("blog generation error: status %d %s", callErr.Status, http.StatusText(callErr.Status))
			if callErr.Detail != "" {
				msg += ": " + callErr.Detail
			}
			return mcp.NewToolResultError(msg), nil
		default:
			return mcp.NewToolResultError("blog generation error occurred: " + callErr.Message()), nil
		}
	}

	switch outcome.Variant {
	case blogapi.VariantClarification:
		return mcp.NewToolResultText(formatClarification(outcome.Questions)), nil
	case blogapi.VariantArticle:
		return mcp.NewToolResultText(formatArticle(outcome.Article)), nil
	default:
		return mcp.NewToolResultText(formatUnrecognized(outcome.Raw)), nil
	}
}

// formatClarification renders the generator's questions as a numbered list
// with instructions for the follow-up call.
func formatClarification(questions []string) string {
	var b strings.Builder
	b.WriteString("The generator needs clarification before writing the article:\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\nCall generate_blog again with the same keyword and your answers in clarification_answers, one answer per question, in order.")
	return b.String()
}

// formatArticle renders title, outline, then either the final article
// verbatim or each section as a heading plus body.
func formatArticle(a blogapi.Article) string {
	var b strings.Builder
	if a.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", a.Title)
	}
	if len(a.Outline) > 0 {
		b.WriteString("Outline:\n")
		for i, item := range a.Outline {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}
	if a.FinalArticle != "" {
		b.WriteString(a.FinalArticle)
		return b.String()
	}
	for i, s := range a.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n%s", s.Title, s.Content)
	}
	return b.String()
}

// formatUnrecognized flags the unexpected shape and echoes the body,
// pretty-printed when it indents cleanly.
func formatUnrecognized(raw json.RawMessage) string {
	pretty := string(raw)
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err == nil {
		pretty = buf.String()
	}
	return "unexpected response format from the generation service:\n\n" + pretty
}
