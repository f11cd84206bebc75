package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hackseek-app/hackseek/internal/insights"
)

const assistantSystemPrompt = "You are HACKSEEK's AI assistant, an expert in innovation, hackathons, and problem-solving. " +
	"Help users with project ideas, technical questions, and creative solutions for hackathon challenges. " +
	"Provide concise, practical advice and respond in a friendly, encouraging tone."

const enhanceSystemPrompt = "You are an advanced innovation insights generator. " +
	"Analyze the problem statement and provide deep, actionable insights that might not be immediately obvious. " +
	"Organize your response into: 1) Core Problem Identification, 2) Hidden Factors, 3) Cross-Domain Connections, " +
	"4) Potential Innovation Paths, and 5) Success Metrics."

const (
	requestTimeout   = 60 * time.Second
	maxAttempts      = 3
	chatMaxTokens    = 300
	enhanceMaxTokens = 2000
	temperature      = 0.7
)

type failureClass int

const (
	failureTimeout failureClass = iota
	failureRateLimit
	failureServer
	failureClient
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type ClientCreator func(apiKey string) Messager

func defaultCreator(apiKey string) Messager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newMessager ClientCreator = defaultCreator

// Client is the chat and enhancement boundary. All calls are bounded by a
// per-request timeout and retried up to three times on transient transport
// failures; content problems are not retried.
type Client struct {
	messages Messager
}

func NewClient(m Messager) *Client {
	return &Client{messages: m}
}

func NewClientFromEnv() (*Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &Client{messages: newMessager(apiKey)}, nil
}

// Chat answers one user conversation turn given the prior history.
func (c *Client) Chat(ctx context.Context, history []Message) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty message history")
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   chatMaxTokens,
		System:      []anthropic.TextBlockParam{{Text: assistantSystemPrompt}},
		Messages:    toParams(history),
		Temperature: anthropic.Float(temperature),
	}
	return c.complete(ctx, params)
}

// EnhanceInsights asks for the five-section deep analysis of a problem,
// passing the rule-based insights along as additional context.
func (c *Client) EnhanceInsights(ctx context.Context, problem string, ins insights.Insights) (string, error) {
	prompt := "Problem Statement: " + problem
	if extra := insightContext(ins); extra != "" {
		prompt += "\n\nAdditional Context: " + extra
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   enhanceMaxTokens,
		System:      []anthropic.TextBlockParam{{Text: enhanceSystemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(temperature),
	}
	return c.complete(ctx, params)
}

func (c *Client) complete(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := c.messages.New(callCtx, params)
		cancel()
		if err != nil {
			lastErr = err
			class := classifyTransportError(err)
			if attempt < maxAttempts && (class == failureTimeout || class == failureRateLimit || class == failureServer) {
				time.Sleep(backoffDelay(attempt))
				continue
			}
			return "", fmt.Errorf("model call failed: %w", err)
		}
		var sb strings.Builder
		for _, b := range resp.Content {
			if b.Type == "text" {
				sb.WriteString(b.Text)
			}
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			return "", errors.New("model returned an empty response")
		}
		return text, nil
	}
	return "", fmt.Errorf("model call failed after retries: %w", lastErr)
}

func toParams(history []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

func insightContext(ins insights.Insights) string {
	var parts []string
	if len(ins.Trends) > 0 {
		parts = append(parts, "Observed trends: "+strings.Join(ins.Trends, "; "))
	}
	if len(ins.Gaps) > 0 {
		parts = append(parts, "Identified gaps: "+strings.Join(ins.Gaps, "; "))
	}
	return strings.Join(parts, "\n")
}

func classifyTransportError(err error) failureClass {
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"):
		return failureRateLimit
	case strings.Contains(msg, " 5") || strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error"):
		return failureServer
	case strings.Contains(msg, " 4") || strings.Contains(msg, "status code: 4"):
		return failureClient
	default:
		return failureServer
	}
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
