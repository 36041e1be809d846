package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/mindful/internal/cli"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository/sqlite"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/llm"
)

type echoModel struct{}

func (echoModel) Complete(_ context.Context, messages []llm.Message) (string, error) {
	return "you said: " + messages[len(messages)-1].Content, nil
}

func newShell(t *testing.T) (*cli.CLI, *bytes.Buffer) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	users := service.NewUserService(store.Users())
	journal := service.NewJournalService(store.Users(), store.DailyLogs(), service.JournalOptions{})
	assistant := service.NewAssistantService(journal, echoModel{}, nil)
	out := &bytes.Buffer{}
	return cli.New(users, journal, assistant, out), out
}

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		Input string
		Want  []string
	}{
		{Input: "stats", Want: []string{"stats"}},
		{Input: `log 2024-03-01 7 "Very Good"  Neutral`, Want: []string{"log", "2024-03-01", "7", "Very Good", "Neutral"}},
		{Input: `a "" b`, Want: []string{"a", "", "b"}},
		{Input: "chat\thow are you", Want: []string{"chat", "how", "are", "you"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			assert.Equal(t, tc.Want, cli.ParseArgs(tc.Input))
		})
	}
}

func TestSession(t *testing.T) {
	shell, out := newShell(t)
	ctx := context.Background()
	run := func(line string) (string, error) {
		out.Reset()
		err := shell.Run(ctx, line)
		return out.String(), err
	}

	_, err := run("log 2024-03-01 7 Good Neutral")
	assert.ErrorIs(t, err, cli.ErrNotLoggedIn)

	_, err = run("register alice alice_password")
	require.NoError(t, err)
	_, err = run("register alice another_password")
	assert.ErrorContains(t, err, "already exists")

	_, err = run("login alice wrong_password")
	assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	assert.Equal(t, "mindful> ", shell.Prompt())

	_, err = run("login alice alice_password")
	require.NoError(t, err)
	assert.Equal(t, "alice", shell.Owner())
	assert.Equal(t, "mindful:alice> ", shell.Prompt())

	output, err := run("stats")
	require.NoError(t, err)
	assert.Contains(t, output, "No logs yet")

	_, err = run(`log 2024-03-01 7 Good Neutral "oatmeal; salad" "Reading;Exercise" "quiet day"`)
	require.NoError(t, err)
	_, err = run(`log 2024-03-02 8 "Very Good" "Very Good" "" Reading`)
	require.NoError(t, err)
	_, err = run(`log 2024-03-03 8 Great Good`)
	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)

	output, err = run("logs 2024-03-01 2024-03-02")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "2024-03-02"), output)
	assert.Contains(t, output, "meals: oatmeal, salad")
	assert.Contains(t, output, "notes: quiet day")

	output, err = run("stats week")
	require.NoError(t, err)
	assert.Contains(t, output, "Average sleep: 7.50 h")
	assert.Contains(t, output, "Average mood: 4.00 / 5")
	assert.Contains(t, output, "Activities: Reading (2), Exercise (1)")

	output, err = run("insights")
	require.NoError(t, err)
	assert.Equal(t, "1. Your most frequent activity is Reading. Consider how this activity affects your mood and energy levels.\n", output)

	output, err = run("chat how was my week")
	require.NoError(t, err)
	assert.Equal(t, "you said: how was my week\n", output)

	output, err = run("chat")
	require.NoError(t, err)
	assert.Contains(t, output, "How would you describe your overall mood lately?")

	_, err = run("logout")
	require.NoError(t, err)
	assert.Equal(t, "", shell.Owner())

	_, err = run("exit")
	assert.ErrorIs(t, err, cli.ErrExit)
}

func TestHelpAndUnknown(t *testing.T) {
	shell, out := newShell(t)
	ctx := context.Background()

	require.NoError(t, shell.Run(ctx, "help"))
	assert.Contains(t, out.String(), "Available commands:")
	out.Reset()
	require.NoError(t, shell.Run(ctx, "help log"))
	assert.Contains(t, out.String(), "Syntax: log")

	assert.ErrorContains(t, shell.Run(ctx, "dance"), "unknown command")
	assert.NoError(t, shell.Run(ctx, "   "))
}

func TestChatDisabledWithoutAssistant(t *testing.T) {
	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	users := service.NewUserService(store.Users())
	journal := service.NewJournalService(store.Users(), store.DailyLogs(), service.JournalOptions{})
	shell := cli.New(users, journal, nil, &bytes.Buffer{})
	ctx := context.Background()

	require.NoError(t, shell.Run(ctx, "register bob bob_password"))
	require.NoError(t, shell.Run(ctx, "login bob bob_password"))
	assert.ErrorContains(t, shell.Run(ctx, "chat hi"), "OPENAI_API_KEY")
}
