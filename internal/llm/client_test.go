package llm

import (
	"context"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hackseek-app/hackseek/internal/insights"
)

type scriptedMessager struct {
	replies []string
	errs    []error
	calls   int
	params  []anthropic.MessageNewParams
}

func (m *scriptedMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	i := m.calls
	m.calls++
	m.params = append(m.params, params)
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	reply := ""
	if i < len(m.replies) {
		reply = m.replies[i]
	}
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{{Type: "text", Text: reply}},
	}, nil
}

func TestChatMapsHistoryAndLimits(t *testing.T) {
	m := &scriptedMessager{replies: []string{"Try a triage demo."}}
	c := NewClient(m)
	out, err := c.Chat(context.Background(), []Message{
		{Role: RoleUser, Content: "How do I demo this?"},
		{Role: RoleAssistant, Content: "Keep it short."},
		{Role: RoleUser, Content: "More detail please."},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out != "Try a triage demo." {
		t.Fatalf("reply = %q", out)
	}
	p := m.params[0]
	if p.MaxTokens != chatMaxTokens {
		t.Fatalf("max tokens = %d, want %d", p.MaxTokens, chatMaxTokens)
	}
	if len(p.Messages) != 3 {
		t.Fatalf("messages = %d", len(p.Messages))
	}
	if p.System[0].Text != assistantSystemPrompt {
		t.Fatal("wrong system prompt")
	}
}

func TestChatRejectsEmptyHistory(t *testing.T) {
	c := NewClient(&scriptedMessager{})
	if _, err := c.Chat(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestEnhanceInsightsPrompt(t *testing.T) {
	m := &scriptedMessager{replies: []string{"1) Core Problem Identification: ..."}}
	c := NewClient(m)
	ins := insights.Insights{
		Trends: []string{"Growing use of federated systems"},
		Gaps:   []string{"Interoperability remains unsolved"},
	}
	out, err := c.EnhanceInsights(context.Background(), "Hospitals cannot share records.", ins)
	if err != nil {
		t.Fatalf("EnhanceInsights: %v", err)
	}
	if out == "" {
		t.Fatal("empty enhancement")
	}
	p := m.params[0]
	if p.MaxTokens != enhanceMaxTokens {
		t.Fatalf("max tokens = %d, want %d", p.MaxTokens, enhanceMaxTokens)
	}
	if p.System[0].Text != enhanceSystemPrompt {
		t.Fatal("wrong system prompt")
	}
	prompt := p.Messages[0].Content[0].OfText.Text
	if !strings.Contains(prompt, "Problem Statement: Hospitals cannot share records.") {
		t.Fatalf("prompt missing problem statement: %q", prompt)
	}
	if !strings.Contains(prompt, "federated systems") || !strings.Contains(prompt, "Interoperability") {
		t.Fatalf("prompt missing insight context: %q", prompt)
	}
}

func TestCompleteRetriesServerErrors(t *testing.T) {
	m := &scriptedMessager{
		errs:    []error{assertErr("status code: 500 upstream error"), nil},
		replies: []string{"", "recovered"},
	}
	c := NewClient(m)
	out, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out != "recovered" || m.calls != 2 {
		t.Fatalf("out=%q calls=%d", out, m.calls)
	}
}

func TestCompleteDoesNotRetryClientErrors(t *testing.T) {
	m := &scriptedMessager{errs: []error{assertErr("status code: 400 bad request")}}
	c := NewClient(m)
	if _, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error")
	}
	if m.calls != 1 {
		t.Fatalf("calls = %d, want 1", m.calls)
	}
}

func TestCompleteEmptyResponseIsError(t *testing.T) {
	m := &scriptedMessager{replies: []string{"   "}}
	c := NewClient(m)
	if _, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestClassifyTransportError(t *testing.T) {
	for _, tc := range []struct {
		msg  string
		want failureClass
	}{
		{"status code: 429 too many requests", failureRateLimit},
		{"status code: 500 upstream error", failureServer},
		{"status code: 400 bad request", failureClient},
		{"connection reset by peer", failureServer},
	} {
		if got := classifyTransportError(assertErr(tc.msg)); got != tc.want {
			t.Fatalf("classify(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
	if classifyTransportError(context.DeadlineExceeded) != failureTimeout {
		t.Fatal("deadline should classify as timeout")
	}
}

func TestBackoffDelay(t *testing.T) {
	if backoffDelay(1).Seconds() != 1 {
		t.Fatal("attempt 1 should be 1s")
	}
	if backoffDelay(2).Seconds() != 2 {
		t.Fatal("attempt 2 should be 2s")
	}
}

func TestNewClientFromEnvRequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewClientFromEnv(); err == nil {
		t.Fatal("expected error without API key")
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
