package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	latest *history.Assessment
	err    error
}

func (f fakeHistory) Latest(context.Context, string) (*history.Assessment, error) {
	return f.latest, f.err
}

type fakeAnswerer struct {
	answer   string
	err      error
	question string
}

func (f *fakeAnswerer) Answer(_ context.Context, question string) (string, error) {
	f.question = question
	return f.answer, f.err
}

func ask(t *testing.T, b *Bot, msg string) *Response {
	t.Helper()
	resp, err := b.Ask(context.Background(), "alice", msg)
	require.NoError(t, err)
	return resp
}

func TestIntentRouting(t *testing.T) {
	b := New(Deps{})

	tests := []struct {
		msg    string
		intent string
	}{
		{"Roadmap for data scientist", "roadmap"},
		{"how to become a lawyer and what is the salary", "roadmap"},
		{"What is the salary of a doctor?", "salary"},
		{"which careers are trending", "trending"},
		{"any short course ideas?", "short_courses"},
		{"courses for ui/ux", "courses"},
		{"Hello there", "greeting"},
		{"government jobs after college", "government"},
		{"what is the future of AI", "future_of_ai"},
		{"compare data scientist and software engineer", "compare"},
		{"lawyer vs doctor", "compare"},
		{"best jobs with statistics", "math_careers"},
		{"career in creative fields", "design_careers"},
		{"jobs with programming", "coding_careers"},
		{"career for public speaking", "communication_careers"},
		{"career in leadership", "leadership_careers"},
		{"something unrelated", "help"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.intent, ask(t, b, tt.msg).Intent)
		})
	}
}

func TestGreetingNeedsWholeWord(t *testing.T) {
	b := New(Deps{})
	assert.Equal(t, "help", ask(t, b, "this is nothing").Intent)
	assert.Equal(t, "greeting", ask(t, b, "hi!").Intent)
}

func TestEmptyMessage(t *testing.T) {
	resp := ask(t, New(Deps{}), "   ")
	assert.Equal(t, emptyMessageReply, resp.Reply)
}

func TestRoadmapReply(t *testing.T) {
	b := New(Deps{})

	resp := ask(t, b, "roadmap for data scientist")
	assert.True(t, strings.HasPrefix(resp.Reply, "Roadmap for Data Scientist:\n1. "))
	assert.Contains(t, resp.Reply, "\n5. ")
	assert.NotContains(t, resp.Reply, "Also detected")

	resp = ask(t, b, "roadmap please")
	assert.Contains(t, resp.Reply, "Tell me which role")

	resp = ask(t, b, "path to cloud engineer or doctor")
	assert.Contains(t, resp.Reply, "Roadmap for Cloud Engineer:")
	assert.Contains(t, resp.Reply, "1. Strengthen fundamentals")
	assert.Contains(t, resp.Reply, "Also detected: Doctor / Healthcare.")
}

func TestSalaryReply(t *testing.T) {
	b := New(Deps{})

	resp := ask(t, b, "salary?")
	assert.Contains(t, resp.Reply, "Software Engineer: ")
	assert.Contains(t, resp.Reply, "Data Scientist: ")
	assert.Contains(t, resp.Reply, "Doctor / Healthcare: ")

	resp = ask(t, b, "what salary do devops people get")
	assert.Contains(t, resp.Reply, "Cloud Engineer: ")
	assert.NotContains(t, resp.Reply, "Doctor")
}

func TestCoursesReply(t *testing.T) {
	b := New(Deps{})

	resp := ask(t, b, "i want to learn design")
	assert.Contains(t, resp.Reply, "Designer / UI-UX: ")

	resp = ask(t, b, "study data")
	assert.Contains(t, resp.Reply, "Data Scientist: ")

	resp = ask(t, b, "what should i study")
	assert.Contains(t, resp.Reply, "Software Engineer: ")
	assert.Contains(t, resp.Reply, "Designer / UI-UX: ")
}

func TestExtractCareersPrefersLongestAlias(t *testing.T) {
	assert.Equal(t, []string{"AI / ML Engineer"}, ExtractCareers("Machine Learning Engineer"))
	assert.Equal(t, []string{"Designer / UI-UX"}, ExtractCareers("ux designer"))
	assert.Empty(t, ExtractCareers("astronaut"))

	got := ExtractCareers("software engineer or data scientist")
	assert.ElementsMatch(t, []string{"Software Engineer", "Data Scientist"}, got)
}

func TestSkillHint(t *testing.T) {
	latest := &history.Assessment{Scores: careers.Scores{Math: 85, Coding: 90, Design: 10}}
	b := New(Deps{}, WithHistory(fakeHistory{latest: latest}))

	resp := ask(t, b, "salary for lawyer")
	assert.True(t, strings.HasSuffix(resp.Reply, "\n\nYour strongest areas: Coding (90), Math (85)."), resp.Reply)

	// Greetings stay short.
	resp = ask(t, b, "hello")
	assert.NotContains(t, resp.Reply, "strongest")

	b = New(Deps{}, WithHistory(fakeHistory{err: history.ErrNotFound}))
	assert.NotContains(t, ask(t, b, "salary").Reply, "strongest")
}

func TestAnswererFallback(t *testing.T) {
	answerer := &fakeAnswerer{answer: "  Try volunteering.  "}
	b := New(Deps{}, WithAnswerer(answerer))

	resp := ask(t, b, "  Should I take a gap year? ")
	assert.Equal(t, "answerer", resp.Intent)
	assert.Equal(t, "Try volunteering.", resp.Reply)
	assert.Equal(t, "Should I take a gap year?", answerer.question)

	// Recognized intents never reach the answerer.
	answerer.question = ""
	ask(t, b, "roadmap for doctor")
	assert.Empty(t, answerer.question)

	failing := New(Deps{}, WithAnswerer(&fakeAnswerer{err: errors.New("quota")}))
	resp = ask(t, failing, "Should I take a gap year?")
	assert.Equal(t, "help", resp.Intent)
	assert.Equal(t, helpText, resp.Reply)
}

type brokenIntent struct{}

func (brokenIntent) Name() string      { return "broken" }
func (brokenIntent) Match(string) bool { return true }
func (brokenIntent) Reply(context.Context, Deps, *Request) (string, error) {
	return "", errors.New("boom")
}

func TestIntentErrorIsReturned(t *testing.T) {
	_, err := New(Deps{}, WithIntents(brokenIntent{})).Ask(context.Background(), "alice", "anything")
	assert.ErrorContains(t, err, "broken: boom")
}
