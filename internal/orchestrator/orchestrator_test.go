package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/source"
	"github.com/thirdweb-dev/grants-insight/internal/storage"
	"github.com/thirdweb-dev/grants-insight/test/mocks"
)

var start = time.Date(2023, 8, 15, 12, 0, 0, 0, time.UTC)

func testRounds() []common.Round {
	return []common.Round{
		{Program: "GG18", RoundId: "R1", ChainId: 1, Name: "Climate", MatchingPool: decimal.NewFromInt(100), StartingTime: start},
		{Program: "GG18", RoundId: "R2", ChainId: 10, Name: "OSS", MatchingPool: decimal.NewFromInt(200), StartingTime: start},
		{Program: "GG18", RoundId: "R3", ChainId: 424, Name: "Web3", MatchingPool: decimal.NewFromInt(300), StartingTime: start},
	}
}

type recordingSink struct {
	name     string
	err      error
	sessions atomic.Int32
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Handle(ctx context.Context, session *pipeline.Session) error {
	s.sessions.Add(1)
	return s.err
}

func TestRefresh_FetchErrorBecomesWarning(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()

	for _, r := range rounds {
		mockSource.EXPECT().GetRoundProjects(mock.Anything, r.ChainId, r.RoundId).Return([]common.Project{{ProjectId: "p-" + r.RoundId, Title: r.Name, Votes: 1}}, nil)
	}
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{{Id: "v1", BlockNumber: 100}}, nil)
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(10), "R2").Return(nil, &source.FetchError{URL: "https://indexer/10/rounds/R2/votes.json", StatusCode: 500})
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(424), "R3").Return([]common.Vote{{Id: "v3", BlockNumber: 7}}, nil)

	sink := &recordingSink{name: "test"}
	o := NewOrchestrator(mockSource, rounds, WithSinks(sink))
	session, err := o.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, session.Projects, 3)
	// configuration order regardless of completion order
	assert.Equal(t, "R1", session.Projects[0].RoundId)
	assert.Equal(t, "R2", session.Projects[1].RoundId)
	assert.Equal(t, "R3", session.Projects[2].RoundId)

	require.Len(t, session.Votes, 2)
	assert.Equal(t, "R1", session.Votes[0].RoundId)
	assert.Equal(t, "R3", session.Votes[1].RoundId)

	require.Len(t, session.Warnings, 1)
	assert.Equal(t, pipeline.Warning{ChainId: 10, RoundId: "R2", Table: "votes", Message: "failed to fetch https://indexer/10/rounds/R2/votes.json: status 500"}, session.Warnings[0])

	assert.Same(t, session, o.Current())
	assert.Equal(t, int32(1), sink.sessions.Load())
}

func TestRefresh_MissingFieldAborts(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]

	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return(nil, &common.MissingFieldError{Entity: "project", Field: "amountUSD"})

	sink := &recordingSink{name: "test"}
	o := NewOrchestrator(mockSource, rounds, WithSinks(sink))
	session, err := o.Refresh(context.Background())
	require.Error(t, err)
	assert.Nil(t, session)

	var missing *common.MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "round R1 on chain 1")
	assert.Nil(t, o.Current())
	assert.Equal(t, int32(0), sink.sessions.Load())
}

func TestRefresh_FailureKeepsPreviousSession(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]

	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{}, nil).Once()
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{}, nil).Once()
	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return(nil, &common.InvalidFieldError{Entity: "project", Field: "votes", Value: -1}).Once()

	o := NewOrchestrator(mockSource, rounds)
	first, err := o.Refresh(context.Background())
	require.NoError(t, err)

	_, err = o.Refresh(context.Background())
	require.Error(t, err)
	assert.Same(t, first, o.Current())
}

func TestRefresh_SinkErrorsAreNotFatal(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	mockStorage := mocks.NewMockISnapshotStorage(t)
	rounds := testRounds()[:1]

	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{{ProjectId: "p1"}}, nil)
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{{Id: "v1"}}, nil)
	mockStorage.EXPECT().InsertProjects(mock.MatchedBy(func(meta storage.SnapshotMeta) bool {
		return meta.Program == "GG18" && meta.Id != ""
	}), mock.Anything).Return(errors.New("connection refused"))

	failing := &recordingSink{name: "failing", err: errors.New("boom")}
	o := NewOrchestrator(mockSource, rounds, WithSinks(NewSnapshotSink(mockStorage, "GG18"), failing))
	session, err := o.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, int32(1), failing.sessions.Load())
}

func TestRefresh_NoRounds(t *testing.T) {
	o := NewOrchestrator(mocks.NewMockISource(t), nil)
	session, err := o.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, session.Projects)
	assert.Empty(t, session.Votes)
}

func TestStart_StopsOnCancel(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]
	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{}, nil)
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{}, nil)

	o := NewOrchestrator(mockSource, rounds, WithRefreshInterval(time.Hour), WithParallelism(1))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return o.Current() != nil }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("orchestrator did not stop")
	}
}

func TestHasSink(t *testing.T) {
	o := NewOrchestrator(mocks.NewMockISource(t), nil, WithSinks(&recordingSink{name: "kafka"}))
	assert.True(t, o.HasSink("kafka"))
	assert.False(t, o.HasSink("export"))
}

func TestRefresh_CancelledKeepsPreviousSession(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]

	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{{ProjectId: "p1", Title: "Trees"}}, nil).Once()
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{{Id: "v1", BlockNumber: 100}}, nil).Once()
	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").
		Return(nil, &source.FetchError{URL: "https://indexer/1/rounds/R1/applications.json", Err: context.Canceled}).Once()

	sink := &recordingSink{name: "test"}
	o := NewOrchestrator(mockSource, rounds, WithSinks(sink))
	first, err := o.Refresh(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session, err := o.Refresh(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, session)
	assert.Same(t, first, o.Current())
	assert.Equal(t, int32(1), sink.sessions.Load())
}

func TestRefresh_CancelledWithoutFetchErrors(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]
	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{}, nil)
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := NewOrchestrator(mockSource, rounds)
	_, err := o.Refresh(ctx)
	require.Error(t, err)
	assert.Nil(t, o.Current())
}

func TestShutdown_StopsStart(t *testing.T) {
	mockSource := mocks.NewMockISource(t)
	rounds := testRounds()[:1]
	mockSource.EXPECT().GetRoundProjects(mock.Anything, uint64(1), "R1").Return([]common.Project{}, nil)
	mockSource.EXPECT().GetRoundVotes(mock.Anything, uint64(1), "R1").Return([]common.Vote{}, nil)

	o := NewOrchestrator(mockSource, rounds, WithRefreshInterval(time.Hour))
	done := make(chan struct{})
	go func() {
		o.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return o.Current() != nil }, time.Second, 10*time.Millisecond)
	o.Shutdown()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("orchestrator did not stop")
	}
}
