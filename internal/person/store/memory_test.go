package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"pessoas/internal/person/idgen"
	"pessoas/internal/person/models"
	"pessoas/pkg/platform/sentinel"
	"pessoas/pkg/testutil"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) TestInsertAndFind() {
	p := testutil.NewPersonBuilder().Build()
	s.Require().NoError(s.store.Insert(s.ctx, p))

	found, err := s.store.FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.Equal(p.ID(), found.ID())
	s.Equal(p.Name(), found.Name())
	s.Equal(p.Nick(), found.Nick())
	s.True(p.BirthDate().Equal(found.BirthDate()))
	s.Equal(p.Stack(), found.Stack())
}

func (s *InMemorySuite) TestFindByIDNotFound() {
	_, err := s.store.FindByID(s.ctx, testutil.TestIDs.Unknown)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemorySuite) TestInsertNeverOverwrites() {
	original := testutil.NewPersonBuilder().WithName("Original").Build()
	s.Require().NoError(s.store.Insert(s.ctx, original))

	impostor := testutil.NewPersonBuilder().WithName("Impostor").Build()
	err := s.store.Insert(s.ctx, impostor)
	s.ErrorIs(err, sentinel.ErrConflict)

	found, err := s.store.FindByID(s.ctx, original.ID())
	s.Require().NoError(err)
	s.Equal(models.PersonName("Original"), found.Name())

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *InMemorySuite) TestCountTracksInserts() {
	gen := idgen.NewSequential()
	for i := range 5 {
		count, err := s.store.Count(s.ctx)
		s.Require().NoError(err)
		s.Equal(i, count)

		s.Require().NoError(s.store.Insert(s.ctx, testutil.NewPersonBuilder().WithID(gen.NewID()).Build()))
	}
	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, count)
}

func (s *InMemorySuite) TestStackOwnership() {
	s.Run("absent and empty stacks survive", func() {
		absent := testutil.NewPersonBuilder().WithID(testutil.TestIDs.PersonID1).WithoutStack().Build()
		empty := testutil.NewPersonBuilder().WithID(testutil.TestIDs.PersonID2).WithStack().Build()
		s.Require().NoError(s.store.Insert(s.ctx, absent))
		s.Require().NoError(s.store.Insert(s.ctx, empty))

		got, err := s.store.FindByID(s.ctx, absent.ID())
		s.Require().NoError(err)
		s.False(got.HasStack())

		got, err = s.store.FindByID(s.ctx, empty.ID())
		s.Require().NoError(err)
		s.True(got.HasStack())
		s.Empty(got.Stack())
	})

	s.SetupTest()

	s.Run("caller mutation does not reach the store", func() {
		p := testutil.NewPersonBuilder().WithStack("Go", "Rust").Build()
		s.Require().NoError(s.store.Insert(s.ctx, p))

		first, err := s.store.FindByID(s.ctx, p.ID())
		s.Require().NoError(err)
		stack := first.Stack()
		stack[0] = "PHP"

		second, err := s.store.FindByID(s.ctx, p.ID())
		s.Require().NoError(err)
		s.Equal([]models.TechName{"Go", "Rust"}, second.Stack())
		s.NotSame(first, second)
	})
}

func (s *InMemorySuite) TestSnapshotOrderedByID() {
	gen := idgen.NewSequential()
	ids := make([]string, 0, 4)
	persons := make([]*models.Person, 0, 4)
	for i := range 4 {
		p := testutil.NewPersonBuilder().WithID(gen.NewID()).WithNick(fmt.Sprintf("nick-%d", i)).Build()
		ids = append(ids, p.ID().String())
		persons = append(persons, p)
	}
	// insert out of order
	for _, i := range []int{2, 0, 3, 1} {
		s.Require().NoError(s.store.Insert(s.ctx, persons[i]))
	}

	snap, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(snap, 4)
	for i, p := range snap {
		s.Equal(ids[i], p.ID().String())
	}
}

func (s *InMemorySuite) TestSnapshotEmpty() {
	snap, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.NotNil(snap)
	s.Empty(snap)
}

func TestInMemory_ConcurrentInsertsAndReads(t *testing.T) {
	const writers = 200
	st := NewInMemory()
	ctx := context.Background()
	gen := idgen.NewV7()

	persons := make([]*models.Person, writers)
	for i := range persons {
		persons[i] = testutil.NewPersonBuilder().WithID(gen.NewID()).Build()
	}

	result := testutil.RunConcurrent(writers*2, func(idx int) error {
		if idx%2 == 0 {
			return st.Insert(ctx, persons[idx/2])
		}
		if _, err := st.Count(ctx); err != nil {
			return err
		}
		_, err := st.Snapshot(ctx)
		return err
	})

	assert.Equal(t, int32(writers*2), result.Successes)
	assert.Zero(t, result.Conflicts)

	count, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers, count)

	for _, p := range persons {
		_, err := st.FindByID(ctx, p.ID())
		require.NoError(t, err)
	}
}

func TestInMemory_ConcurrentDuplicateInsert(t *testing.T) {
	st := NewInMemory()
	ctx := context.Background()
	p := testutil.NewPersonBuilder().Build()

	result := testutil.RunConcurrent(50, func(int) error {
		return st.Insert(ctx, p)
	})

	assert.Equal(t, int32(1), result.Successes)
	assert.Equal(t, int32(49), result.Conflicts)
}
