package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/limbo/mindful/internal/analytics"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/entity"
)

const listSeparator = ";"

func (c *CLI) handleRegister(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: register <name> <password>")
	}
	_, err := c.users.Register(ctx, &service.RegisterRequest{Name: args[0], Password: args[1]})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return fmt.Errorf("user %s already exists", args[0])
		}
		return err
	}
	fmt.Fprintf(c.out, "User %s registered. Use 'login %s <password>' to start.\n", args[0], args[0])
	return nil
}

func (c *CLI) handleLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <name> <password>")
	}
	ok, err := c.users.Verify(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return errorvalues.ErrWrongCredentials
	}
	c.owner = args[0]
	fmt.Fprintf(c.out, "Welcome, %s.\n", c.owner)
	return nil
}

func (c *CLI) handleLogout() error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Goodbye, %s.\n", c.owner)
	c.owner = ""
	return nil
}

func (c *CLI) handleLog(ctx context.Context, args []string) error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	if len(args) < 4 || len(args) > 7 {
		return fmt.Errorf("usage: %s", strings.SplitN(commandHelp["log"], "\n", 2)[0])
	}
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid sleep hours %q", args[1])
	}
	req := &service.DailyLogRequest{
		Date:         args[0],
		SleepHours:   hours,
		SleepQuality: args[2],
		Mood:         args[3],
	}
	if len(args) > 4 {
		req.Meals = strings.Split(args[4], listSeparator)
	}
	if len(args) > 5 {
		req.Activities = strings.Split(args[5], listSeparator)
	}
	if len(args) > 6 {
		req.Notes = args[6]
	}
	log, err := c.journal.Append(ctx, c.owner, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged %s (#%d).\n", entity.FormatDate(log.Date), log.ID)
	return nil
}

func (c *CLI) handleLogs(ctx context.Context, args []string) error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: logs <from> <to>")
	}
	from, err := entity.ParseDate(args[0])
	if err != nil {
		return errorvalues.ErrInvalidDate
	}
	to, err := entity.ParseDate(args[1])
	if err != nil {
		return errorvalues.ErrInvalidDate
	}
	logs, err := c.journal.QueryRange(ctx, c.owner, from, to)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(c.out, "No logs in this period.")
		return nil
	}
	for _, l := range logs {
		fmt.Fprintf(c.out, "%s  sleep %.1fh (%s)  mood %s\n", entity.FormatDate(l.Date), l.SleepHours, l.SleepQuality, l.Mood)
		if len(l.Meals) > 0 {
			fmt.Fprintf(c.out, "    meals: %s\n", strings.Join(l.Meals, ", "))
		}
		if len(l.Activities) > 0 {
			fmt.Fprintf(c.out, "    activities: %s\n", strings.Join(l.Activities, ", "))
		}
		if l.Notes != "" {
			fmt.Fprintf(c.out, "    notes: %s\n", l.Notes)
		}
	}
	return nil
}

func (c *CLI) report(ctx context.Context, args []string) (*analytics.Report, entity.RangeKind, error) {
	if err := c.requireOwner(); err != nil {
		return nil, "", err
	}
	kind := entity.RangeWeek
	if len(args) > 0 {
		kind = entity.ParseRangeKind(strings.ToLower(args[0]))
	}
	r, err := c.journal.Analytics(ctx, c.owner, kind)
	return r, kind, err
}

func (c *CLI) handleStats(ctx context.Context, args []string) error {
	r, kind, err := c.report(ctx, args)
	if errors.Is(err, errorvalues.ErrNoData) {
		fmt.Fprintln(c.out, "No logs yet. Add one with 'log'.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Period: %s (%d days logged)\n", kind, r.Days)
	fmt.Fprintf(c.out, "Average sleep: %.2f h\n", r.AvgSleepHours)
	fmt.Fprintf(c.out, "Average sleep quality: %.2f / 5\n", r.AvgSleepQuality)
	fmt.Fprintf(c.out, "Average mood: %.2f / 5\n", r.AvgMood)
	fmt.Fprintf(c.out, "Activities: %s\n", formatCounts(r.ActivityFrequency))
	fmt.Fprintf(c.out, "Meals: %s\n", formatCounts(r.MealFrequency))
	fmt.Fprintln(c.out, "Trend:")
	for _, p := range r.Series {
		fmt.Fprintf(c.out, "  %s  sleep %4.1fh  mood %d %s\n", entity.FormatDate(p.Date), p.SleepHours, p.Mood, strings.Repeat("*", p.Mood))
	}
	return nil
}

func (c *CLI) handleInsights(ctx context.Context, args []string) error {
	r, _, err := c.report(ctx, args)
	if errors.Is(err, errorvalues.ErrNoData) {
		fmt.Fprintln(c.out, "No logs yet. Add one with 'log'.")
		return nil
	}
	if err != nil {
		return err
	}
	for i, insight := range analytics.Insights(r) {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, insight)
	}
	return nil
}

func (c *CLI) handleChat(ctx context.Context, args []string) error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	if c.assistant == nil {
		return fmt.Errorf("assistant is disabled: set OPENAI_API_KEY to enable chat")
	}
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Some things we could talk about:")
		for _, q := range c.assistant.StarterQuestions() {
			fmt.Fprintf(c.out, "  - %s\n", q)
		}
		return nil
	}
	reply, err := c.assistant.Reply(ctx, c.owner, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, reply.Text)
	return nil
}

func formatCounts(counts []analytics.LabelCount) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(counts))
	for _, lc := range counts {
		parts = append(parts, fmt.Sprintf("%s (%d)", lc.Label, lc.Count))
	}
	return strings.Join(parts, ", ")
}
