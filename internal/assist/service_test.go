package assist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sanad/internal/config"
	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/llm"
)

// stubClient returns a canned completion or error.
type stubClient struct {
	result  string
	err     error
	lastReq llm.Request
	calls   int
}

func (c *stubClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.calls++
	c.lastReq = req
	return c.result, c.err
}

func testCfg() config.AIConfig {
	return config.AIConfig{
		TimeoutSeconds:       10,
		MaxTokens:            240,
		Temperature:          0.4,
		TranslateMaxTokens:   220,
		TranslateTemperature: 0.2,
	}
}

func sampleApp() form.ApplicationState {
	f := form.SubmissionForm{
		Name:             "Omar",
		Dependents:       "3",
		MonthlyIncome:    "1200",
		EmploymentStatus: "unemployed",
	}
	return f.ApplicationState()
}

func TestNormalizeSeed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace collapsed", "hello   world\n\tagain", "hello world again"},
		{"trimmed", "  text  ", "text"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSeed(tt.in); got != tt.want {
				t.Errorf("NormalizeSeed(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSeedTruncatesAt900(t *testing.T) {
	long := strings.Repeat("a", 1000)
	got := NormalizeSeed(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("no ellipsis: %q", got[len(got)-10:])
	}
	if len([]rune(got)) != 903 {
		t.Errorf("truncated length = %d, want 900 + ellipsis", len([]rune(got)))
	}
}

func TestOfflineEchoesSeed(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:   KeyReasonForApplying,
		Language:   i18n.LangEnglish,
		SourceText: "  my   current\ntext ",
	})
	if got != "my current text" {
		t.Errorf("offline seed echo = %q", got)
	}
}

func TestOfflineTemplateReasonEnglish(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	want := "I'm requesting temporary financial assistance to cover essential living costs. " +
		"This support will help bridge the gap until my income stabilizes. " +
		"I'll use the funds responsibly and keep the organization updated."
	if got != want {
		t.Errorf("template mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestOfflineTemplateEmploymentUsesStatusLabel(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:    KeyEmploymentCircumstances,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if !strings.HasPrefix(got, "Employment status: Unemployed.") {
		t.Errorf("missing status label: %q", got)
	}
}

func TestOfflineTemplateFinancialMentionsIncomeAndName(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:    KeyCurrentFinancialSituation,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if !strings.Contains(got, "I am Omar and support 3 household members.") {
		t.Errorf("applicant description wrong: %q", got)
	}
	if !strings.Contains(got, "1,200") && !strings.Contains(got, "1200") {
		t.Errorf("income missing: %q", got)
	}
}

func TestOfflineTemplateSingularDependent(t *testing.T) {
	f := form.SubmissionForm{Dependents: "1"}
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:    KeyCurrentFinancialSituation,
		Application: f.ApplicationState(),
		Language:    i18n.LangEnglish,
	})
	if !strings.Contains(got, "1 household member.") || strings.Contains(got, "members.") {
		t.Errorf("singular form wrong: %q", got)
	}
}

func TestOfflineTemplateArabic(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Offline(Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangArabic,
	})
	if !strings.Contains(got, "أطلب مساعدة مالية مؤقتة") {
		t.Errorf("arabic template wrong: %q", got)
	}
}

func TestGenerateWithoutClientIsOffline(t *testing.T) {
	svc := NewService(nil, testCfg())
	got := svc.Generate(context.Background(), Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if !strings.HasPrefix(got, "I'm requesting temporary financial assistance") {
		t.Errorf("expected offline template, got %q", got)
	}
}

func TestGenerateUsesRemoteResult(t *testing.T) {
	client := &stubClient{result: "A remote draft."}
	svc := NewService(client, testCfg())

	got := svc.Generate(context.Background(), Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if got != "A remote draft." {
		t.Errorf("remote result dropped: %q", got)
	}
	if client.lastReq.MaxTokens != 240 || client.lastReq.Temperature != 0.4 {
		t.Errorf("draft params wrong: %+v", client.lastReq)
	}
	if len(client.lastReq.Messages) != 2 || client.lastReq.Messages[0].Role != "system" {
		t.Errorf("messages wrong: %+v", client.lastReq.Messages)
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	svc := NewService(client, testCfg())

	got := svc.Generate(context.Background(), Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if !strings.HasPrefix(got, "I'm requesting temporary financial assistance") {
		t.Errorf("error should degrade offline, got %q", got)
	}
}

func TestGenerateFallsBackOnEmptyResult(t *testing.T) {
	client := &stubClient{result: "   "}
	svc := NewService(client, testCfg())

	got := svc.Generate(context.Background(), Request{
		FieldKey:    KeyReasonForApplying,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	if got == "" || !strings.HasPrefix(got, "I'm requesting") {
		t.Errorf("empty completion should degrade offline, got %q", got)
	}
}

func TestGenerateRefinesWhenSeeded(t *testing.T) {
	client := &stubClient{result: "Refined."}
	svc := NewService(client, testCfg())

	svc.Generate(context.Background(), Request{
		FieldKey:   KeyReasonForApplying,
		Language:   i18n.LangEnglish,
		SourceText: "my rough draft text",
	})
	prompt := client.lastReq.Messages[1].Content
	if !strings.Contains(prompt, "Improve and tighten") {
		t.Errorf("seeded request should use the refine prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "my rough draft text") {
		t.Errorf("seed text missing from prompt: %q", prompt)
	}
}

func TestGenerateFromScratchUsesGeneratePrompt(t *testing.T) {
	client := &stubClient{result: "Drafted."}
	svc := NewService(client, testCfg())

	svc.Generate(context.Background(), Request{
		FieldKey:    KeyCurrentFinancialSituation,
		Application: sampleApp(),
		Language:    i18n.LangEnglish,
	})
	prompt := client.lastReq.Messages[1].Content
	if !strings.Contains(prompt, "Draft a concise paragraph") {
		t.Errorf("expected generate prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Dependents: 3.") {
		t.Errorf("facts missing from prompt: %q", prompt)
	}
}

func TestGenerateSingleAttempt(t *testing.T) {
	client := &stubClient{err: errors.New("transient")}
	svc := NewService(client, testCfg())

	svc.Generate(context.Background(), Request{
		FieldKey: KeyReasonForApplying,
		Language: i18n.LangEnglish,
	})
	if client.calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", client.calls)
	}
}

func TestTranslatePassThroughs(t *testing.T) {
	failing := &stubClient{err: errors.New("down")}

	tests := []struct {
		name string
		svc  *Service
		text string
	}{
		{"empty text", NewService(&stubClient{result: "x"}, testCfg()), "   "},
		{"no client", NewService(nil, testCfg()), "some text"},
		{"remote failure", NewService(failing, testCfg()), "some text"},
		{"empty completion", NewService(&stubClient{result: " "}, testCfg()), "some text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.svc.Translate(context.Background(), tt.text, i18n.LangArabic); got != tt.text {
				t.Errorf("expected pass-through, got %q", got)
			}
		})
	}
}

func TestTranslateUsesTranslateParams(t *testing.T) {
	client := &stubClient{result: "نص مترجم"}
	svc := NewService(client, testCfg())

	got := svc.Translate(context.Background(), "hello there", i18n.LangArabic)
	if got != "نص مترجم" {
		t.Errorf("translation dropped: %q", got)
	}
	if client.lastReq.MaxTokens != 220 || client.lastReq.Temperature != 0.2 {
		t.Errorf("translate params wrong: %+v", client.lastReq)
	}
	if !strings.Contains(client.lastReq.Messages[0].Content, "العربية") {
		t.Errorf("system translate prompt wrong: %q", client.lastReq.Messages[0].Content)
	}
}

func TestGenerateRespectsContext(t *testing.T) {
	slow := &slowClient{delay: 200 * time.Millisecond}
	cfg := testCfg()
	svc := NewService(slow, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.Generate(ctx, Request{
		FieldKey: KeyReasonForApplying,
		Language: i18n.LangEnglish,
	})
	if !strings.HasPrefix(got, "I'm requesting") {
		t.Errorf("cancelled context should degrade offline, got %q", got)
	}
}

type slowClient struct {
	delay time.Duration
}

func (c *slowClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(c.delay):
		return "late", nil
	}
}
