// Package mcpserver exposes the recommender as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/chat"
	"github.com/spigell/career-mentor/internal/insights"
	"github.com/spigell/career-mentor/internal/interest"
	"github.com/spigell/career-mentor/internal/ranking"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverName = "career-mentor"

// Ranker produces the top careers for a set of scores.
type Ranker interface {
	PredictTop3(scores careers.Scores, interests string) ([]ranking.Result, error)
}

// Asker answers chat messages.
type Asker interface {
	Ask(ctx context.Context, user, message string) (*chat.Response, error)
}

// Deps are the services behind the tools. Bot may be nil to omit ask_mentor.
type Deps struct {
	Ranker   Ranker
	Catalog  *careers.Catalog
	Insights *insights.Catalog
	Bot      Asker
	Logger   *zap.Logger
	// User is the default owner of chat questions.
	User string
}

// Server holds the tool handlers.
type Server struct {
	deps   Deps
	scorer *interest.Scorer
	mcp    *server.MCPServer
}

// New creates the server and registers all tools.
func New(deps Deps, version string) *Server {
	if deps.Catalog == nil {
		deps.Catalog = careers.Default()
	}
	if deps.Insights == nil {
		deps.Insights = insights.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &Server{
		deps:   deps,
		scorer: interest.NewScorer(deps.Catalog),
		mcp:    server.NewMCPServer(serverName, version, server.WithToolCapabilities(false)),
	}
	s.register()
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio serves the tools over stdin and stdout until the input closes.
func (s *Server) ServeStdio() error {
	s.deps.Logger.Info("serving MCP tools over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) register() {
	predictOpts := []mcp.ToolOption{
		mcp.WithDescription("Rank the three best matching careers for eight self-rated scores (0-100) and free-text interests"),
	}
	for _, name := range careers.ScoreNames {
		predictOpts = append(predictOpts, mcp.WithNumber(strings.ToLower(name),
			mcp.Required(),
			mcp.Description(name+" score, clamped to 0-100"),
		))
	}
	predictOpts = append(predictOpts, mcp.WithString("interests",
		mcp.Description("Free-text interests, e.g. 'I love coding and robotics'"),
	))
	s.mcp.AddTool(mcp.NewTool("predict_top3", predictOpts...), s.handlePredict)

	s.mcp.AddTool(mcp.NewTool("tiny_roadmap",
		mcp.WithDescription("Ordered roadmap steps for a career; unknown careers get a generic roadmap"),
		mcp.WithString("career", mcp.Required(), mcp.Description("Career name, e.g. 'Data Scientist'")),
	), s.handleRoadmap)

	s.mcp.AddTool(mcp.NewTool("interest_scores_by_career",
		mcp.WithDescription("Keyword affinity (0, 0.3, 0.6 or 1) of free-text interests for every career"),
		mcp.WithString("interests", mcp.Description("Free-text interests")),
	), s.handleInterests)

	s.mcp.AddTool(mcp.NewTool("career_info",
		mcp.WithDescription("Salary, demand and courses for careers"),
		mcp.WithString("careers", mcp.Required(), mcp.Description("Comma-separated career names")),
	), s.handleInfo)

	if s.deps.Bot != nil {
		s.mcp.AddTool(mcp.NewTool("ask_mentor",
			mcp.WithDescription("Ask the career mentor chatbot a question"),
			mcp.WithString("message", mcp.Required(), mcp.Description("The question")),
			mcp.WithString("user", mcp.Description("User whose latest assessment personalizes the answer")),
		), s.handleAsk)
	}
}

func (s *Server) handlePredict(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values := make([]float64, len(careers.ScoreNames))
	for i, name := range careers.ScoreNames {
		v, err := request.RequireFloat(strings.ToLower(name))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		values[i] = v
	}
	scores, err := careers.ScoresFromSlice(values)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	top, err := s.deps.Ranker.PredictTop3(scores, request.GetString("interests", ""))
	if err != nil {
		s.deps.Logger.Error("predict_top3 failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("prediction failed: %v", err)), nil
	}
	return jsonResult(top)
}

func (s *Server) handleRoadmap(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	career, err := request.RequireString("career")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.deps.Catalog.Roadmap(career))
}

func (s *Server) handleInterests(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scores := s.scorer.Scores(request.GetString("interests", ""))
	out := make(map[string]float64, len(scores))
	for label, v := range scores {
		out[label.String()] = v
	}
	return jsonResult(out)
}

func (s *Server) handleInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("careers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return mcp.NewToolResultError("at least one career is required"), nil
	}
	return jsonResult(s.deps.Insights.Lookup(names))
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	user := request.GetString("user", s.deps.User)

	resp, err := s.deps.Bot.Ask(ctx, user, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ask_mentor failed: %v", err)), nil
	}
	return mcp.NewToolResultText(resp.Reply), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
