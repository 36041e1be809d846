package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/limbo/mindful/internal/analytics"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/llm"
)

const (
	FallbackReply   = "I apologize, but I'm having trouble responding right now. Please try again in a moment."
	noSleepData     = "No recent sleep data available."
	noDaySummaries  = "No recent daily summaries available."
	noInsights      = "No insights yet."
	assistantWindow = entity.RangeWeek
)

var starterQuestions = []string{
	"How would you describe your overall mood lately?",
	"Have you been experiencing any significant stress or anxiety? If so, what seems to trigger it?",
	"How would you rate your sleep quality, and has it changed recently?",
	"Are there any specific mental health concerns or issues you'd like to discuss?",
	"What are your main goals for using MindfulChat?",
	"Have you practiced any relaxation or mindfulness techniques before? If so, which ones?",
}

const systemPromptTmpl = `You are an empathetic and supportive AI mental health assistant named MindfulChat, with expertise in psychology and cognitive behavioral therapy. Your role is to provide mental health support, guidance, and analysis based on the user's data and interactions.

User Profile:
%s

Recent Sleep Data:
%s

Recent Daily Summaries:
%s

Observed Patterns:
%s

As a psychologist, remember to:
1. Be empathetic, understanding, and non-judgmental
2. Ask open-ended questions to encourage the user to express themselves
3. Provide supportive and constructive feedback
4. Suggest evidence-based coping strategies and mindfulness techniques when appropriate
5. Encourage professional help for serious concerns
6. Use a warm and friendly tone
7. Offer encouragement and positive reinforcement
8. Respect the user's privacy and maintain confidentiality
9. Analyze patterns in the user's sleep, mood, and activities to provide insights
10. Highlight potential correlations between behaviors and mental states
11. Suggest small, achievable goals to improve mental well-being`

// Completer is the chat model the assistant talks to.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Counts replies answered with the fallback text. Optional.
type FallbackObserver interface {
	ObserveFallback()
}

type AssistantReply struct {
	Text string
	// Set when the model was unreachable and Text is the fallback
	Degraded bool
}

type AssistantService struct {
	journal  JournalServiceI
	model    Completer
	observer FallbackObserver
}

func NewAssistantService(journal JournalServiceI, model Completer, observer FallbackObserver) *AssistantService {
	return &AssistantService{
		journal:  journal,
		model:    model,
		observer: observer,
	}
}

func (as *AssistantService) Reply(ctx context.Context, owner, message string) (*AssistantReply, error) {
	var logs []entity.DailyLog
	rng, err := as.journal.ResolveRange(ctx, owner, assistantWindow)
	if err != nil {
		return nil, err
	}
	if rng != nil {
		logs, err = as.journal.QueryRange(ctx, owner, rng.From, rng.To)
		if err != nil {
			return nil, err
		}
	}
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt(owner, logs)},
		{Role: llm.RoleUser, Content: message},
	}
	text, err := as.model.Complete(ctx, messages)
	if err != nil {
		slog.Default().Error("assistant upstream failed", slog.String("owner", owner), slog.String("error", err.Error()))
		if as.observer != nil {
			as.observer.ObserveFallback()
		}
		return &AssistantReply{Text: FallbackReply, Degraded: true}, nil
	}
	return &AssistantReply{Text: text}, nil
}

func (as *AssistantService) StarterQuestions() []string {
	out := make([]string, len(starterQuestions))
	copy(out, starterQuestions)
	return out
}

// SystemPrompt renders the owner's recent logs into the assistant instructions.
func SystemPrompt(owner string, logs []entity.DailyLog) string {
	sleep, days := analytics.Summaries(logs)
	insights := analytics.Insights(analytics.SummarizeRaw(sleep, days))
	patterns := noInsights
	if len(insights) > 0 {
		patterns = "- " + strings.Join(insights, "\n- ")
	}
	return fmt.Sprintf(systemPromptTmpl,
		"Name: "+owner,
		FormatSleep(sleep),
		FormatDays(days),
		patterns,
	)
}

func FormatSleep(sleep []analytics.SleepSummary) string {
	if len(sleep) == 0 {
		return noSleepData
	}
	lines := make([]string, 0, len(sleep))
	for _, s := range sleep {
		minutes := int(s.Duration.Minutes())
		lines = append(lines, fmt.Sprintf("Date: %s, Duration: %dh %dm, Quality: %s",
			entity.FormatDate(s.Date), minutes/60, minutes%60, s.Quality))
	}
	return strings.Join(lines, "\n")
}

func FormatDays(days []analytics.DaySummary) string {
	if len(days) == 0 {
		return noDaySummaries
	}
	blocks := make([]string, 0, len(days))
	for _, d := range days {
		blocks = append(blocks, fmt.Sprintf("Date: %s\nMood: %s\nActivities: %s\nSummary: %s",
			entity.FormatDate(d.Date), d.Mood, strings.Join(d.Activities, ", "), d.Summary))
	}
	return strings.Join(blocks, "\n\n")
}
