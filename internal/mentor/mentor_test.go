package mentor

import (
	"context"
	"errors"
	"testing"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/history"
	"github.com/spigell/career-mentor/internal/insights"
	"github.com/spigell/career-mentor/internal/ranking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRanker struct {
	results []ranking.Result
	err     error
}

func (f fakeRanker) PredictTop3(careers.Scores, string) ([]ranking.Result, error) {
	return f.results, f.err
}

type fakeRecorder struct {
	user    string
	entries []history.Entry
	err     error
}

func (f *fakeRecorder) Save(_ context.Context, user string, scores careers.Scores, interests string, top []history.Entry) (*history.Assessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.user = user
	f.entries = top
	return &history.Assessment{ID: "id-1", User: user, Scores: scores, Interests: interests, Top: top}, nil
}

var results = []ranking.Result{
	{Career: careers.DataScientist, Probability: 0.1234567},
	{Career: careers.SoftwareEngineer, Probability: 0.5},
	{Career: "Astronaut", Probability: 0.2},
}

func TestAssessBuildsSortedCards(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := New(Deps{Ranker: fakeRanker{results: results}, Recorder: recorder})

	report, err := svc.Assess(context.Background(), "alice", careers.Scores{Math: 1}, "data")
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", report.Top.Career)
	assert.InDelta(t, 50.0, report.Top.Percent, 1e-9)
	assert.Len(t, report.Top.Roadmap, 5)
	assert.Equal(t, "Software Engineer", report.Top.Info.Name)

	require.Len(t, report.Others, 2)
	assert.Equal(t, "Astronaut", report.Others[0].Career)
	assert.Equal(t, careers.FallbackRoadmap(), report.Others[0].Roadmap)
	assert.Equal(t, insights.Unknown("Astronaut"), report.Others[0].Info)
	assert.Equal(t, "Data Scientist", report.Others[1].Career)

	assert.Equal(t, "id-1", report.AssessmentID)
	assert.Equal(t, "alice", recorder.user)
	assert.Equal(t, []history.Entry{
		{Career: "Software Engineer", Probability: 0.5},
		{Career: "Astronaut", Probability: 0.2},
		{Career: "Data Scientist", Probability: 0.123457},
	}, recorder.entries)
	assert.Len(t, report.Cards(), 3)
}

func TestAssessWithoutRecorder(t *testing.T) {
	report, err := New(Deps{Ranker: fakeRanker{results: results}}).Assess(context.Background(), "alice", careers.Scores{}, "")
	require.NoError(t, err)
	assert.Empty(t, report.AssessmentID)
}

func TestAssessErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := New(Deps{Ranker: fakeRanker{err: boom}}).Assess(context.Background(), "alice", careers.Scores{}, "")
	assert.ErrorIs(t, err, boom)

	_, err = New(Deps{Ranker: fakeRanker{}}).Assess(context.Background(), "alice", careers.Scores{}, "")
	assert.Error(t, err)

	_, err = New(Deps{Ranker: fakeRanker{results: results}, Recorder: &fakeRecorder{err: boom}}).Assess(context.Background(), "alice", careers.Scores{}, "")
	assert.ErrorIs(t, err, boom)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.123457, Round(0.1234567, 6))
	assert.Equal(t, 0.5, Round(0.5, 6))
	assert.Equal(t, 1.0, Round(0.9999999, 6))
}
