package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/repository"
	"github.com/mtlprog/tailtales/internal/service"
)

// ViewServiceTestSuite is the test suite for ViewService.
type ViewServiceTestSuite struct {
	suite.Suite
	store   *repository.MemoryViewStore
	service *service.ViewService
	now     time.Time
}

// SetupTest runs before each test.
func (s *ViewServiceTestSuite) SetupTest() {
	s.now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	s.store = repository.NewMemoryViewStore()
	s.service = service.NewViewService(s.store, time.Hour, service.WithClock(func() time.Time {
		return s.now
	}))
}

func TestViewServiceSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}

func (s *ViewServiceTestSuite) open() *domain.View {
	v, err := s.service.Open(context.Background())
	s.Require().NoError(err)
	return v
}

// TestOpen_InitialState tests that a fresh view starts closed and empty.
func (s *ViewServiceTestSuite) TestOpen_InitialState() {
	v := s.open()

	s.NotEmpty(v.ID)
	s.False(v.Header.MenuOpen)
	s.Empty(v.Hero.Email)
	s.False(v.Hero.Submitted)
	s.Equal(1, s.store.Len())
}

// TestOpen_DistinctViews tests that each page load gets its own state.
func (s *ViewServiceTestSuite) TestOpen_DistinctViews() {
	ctx := context.Background()
	a := s.open()
	b := s.open()
	s.NotEqual(a.ID, b.ID)

	_, err := s.service.ToggleMenu(ctx, a.ID)
	s.Require().NoError(err)

	other, err := s.service.Get(ctx, b.ID)
	s.Require().NoError(err)
	s.False(other.Header.MenuOpen)
}

// TestToggleMenu_Parity tests odd and even click counts.
func (s *ViewServiceTestSuite) TestToggleMenu_Parity() {
	ctx := context.Background()
	v := s.open()

	for i := 0; i < 3; i++ {
		_, err := s.service.ToggleMenu(ctx, v.ID)
		s.Require().NoError(err)
	}
	got, err := s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.True(got.Header.MenuOpen, "3 clicks leave the menu open")

	_, err = s.service.ToggleMenu(ctx, v.ID)
	s.Require().NoError(err)
	got, err = s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.False(got.Header.MenuOpen, "4 clicks leave the menu closed")
}

// TestActivateNav_ClosesMenu tests that any nav link closes an open menu.
func (s *ViewServiceTestSuite) TestActivateNav_ClosesMenu() {
	ctx := context.Background()
	sections := []domain.Section{
		domain.SectionAbout,
		domain.SectionIngredients,
		domain.SectionProducts,
		domain.SectionNone,
	}

	for _, section := range sections {
		v := s.open()
		_, err := s.service.ToggleMenu(ctx, v.ID)
		s.Require().NoError(err)

		got, err := s.service.ActivateNav(ctx, v.ID, section)
		s.Require().NoError(err)
		s.False(got.Header.MenuOpen, "section %s", section)
	}
}

// TestActivateNav_MenuAlreadyClosed tests that closing is idempotent.
func (s *ViewServiceTestSuite) TestActivateNav_MenuAlreadyClosed() {
	v := s.open()

	got, err := s.service.ActivateNav(context.Background(), v.ID, domain.SectionAbout)
	s.Require().NoError(err)
	s.False(got.Header.MenuOpen)
}

// TestActivateNav_UnknownSection tests rejection of unknown anchors.
func (s *ViewServiceTestSuite) TestActivateNav_UnknownSection() {
	v := s.open()

	_, err := s.service.ActivateNav(context.Background(), v.ID, domain.Section("pricing"))
	s.ErrorIs(err, domain.ErrUnknownSection)
}

// TestNav_DoesNotTouchHero tests that header and hero state are independent.
func (s *ViewServiceTestSuite) TestNav_DoesNotTouchHero() {
	ctx := context.Background()
	v := s.open()

	_, err := s.service.ChangeEmail(ctx, v.ID, "user@example.com")
	s.Require().NoError(err)
	_, err = s.service.ToggleMenu(ctx, v.ID)
	s.Require().NoError(err)

	got, err := s.service.ActivateNav(ctx, v.ID, domain.SectionProducts)
	s.Require().NoError(err)
	s.Equal("user@example.com", got.Hero.Email)
	s.False(got.Hero.Submitted)
}

// TestSubmit_Success tests the signup flow.
func (s *ViewServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	v := s.open()

	got, accepted, err := s.service.Submit(ctx, v.ID, "user@example.com")
	s.Require().NoError(err)
	s.True(accepted)
	s.True(got.Hero.Submitted)
	s.Empty(got.Hero.Email)

	stored, err := s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.True(stored.Hero.Submitted)
	s.Empty(stored.Hero.Email)
}

// TestSubmit_Empty tests that an empty submission changes nothing.
func (s *ViewServiceTestSuite) TestSubmit_Empty() {
	ctx := context.Background()
	v := s.open()

	got, accepted, err := s.service.Submit(ctx, v.ID, "")
	s.Require().NoError(err)
	s.False(accepted)
	s.False(got.Hero.Submitted)
	s.Empty(got.Hero.Email)
}

// TestSubmit_EmptyKeepsSyncedEmail tests that an empty submission does not
// wipe a value the view already holds.
func (s *ViewServiceTestSuite) TestSubmit_EmptyKeepsSyncedEmail() {
	ctx := context.Background()
	v := s.open()

	_, err := s.service.ChangeEmail(ctx, v.ID, "user@exa")
	s.Require().NoError(err)

	got, accepted, err := s.service.Submit(ctx, v.ID, "")
	s.Require().NoError(err)
	s.False(accepted)
	s.False(got.Hero.Submitted)
	s.Equal("user@exa", got.Hero.Email)

	stored, err := s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.Equal("user@exa", stored.Hero.Email)
	s.False(stored.Hero.Submitted)
}

// TestSubmit_AfterSuccessIsIgnored tests the one-way transition.
func (s *ViewServiceTestSuite) TestSubmit_AfterSuccessIsIgnored() {
	ctx := context.Background()
	v := s.open()

	_, accepted, err := s.service.Submit(ctx, v.ID, "user@example.com")
	s.Require().NoError(err)
	s.Require().True(accepted)

	got, accepted, err := s.service.Submit(ctx, v.ID, "again@example.com")
	s.Require().NoError(err)
	s.False(accepted)
	s.True(got.Hero.Submitted)
	s.Empty(got.Hero.Email)
}

// TestChangeEmail_Verbatim tests that values are stored untrimmed.
func (s *ViewServiceTestSuite) TestChangeEmail_Verbatim() {
	v := s.open()

	got, err := s.service.ChangeEmail(context.Background(), v.ID, " user@ ")
	s.Require().NoError(err)
	s.Equal(" user@ ", got.Hero.Email)
}

// TestGet_InvalidID tests malformed view ids.
func (s *ViewServiceTestSuite) TestGet_InvalidID() {
	_, err := s.service.Get(context.Background(), "not-a-uuid")
	s.ErrorIs(err, domain.ErrInvalidViewID)

	_, err = s.service.ToggleMenu(context.Background(), "not-a-uuid")
	s.ErrorIs(err, domain.ErrInvalidViewID)
}

// TestGet_Unknown tests well-formed but unknown ids.
func (s *ViewServiceTestSuite) TestGet_Unknown() {
	_, err := s.service.Get(context.Background(), "2f1d1b6e-7a4e-4f0c-9a57-1c2b3d4e5f60")
	s.ErrorIs(err, domain.ErrViewNotFound)
}

// TestExpiredView tests that idle views are gone even before pruning.
func (s *ViewServiceTestSuite) TestExpiredView() {
	ctx := context.Background()
	v := s.open()

	s.now = s.now.Add(2 * time.Hour)

	_, err := s.service.Get(ctx, v.ID)
	s.ErrorIs(err, domain.ErrViewNotFound)

	_, err = s.service.ToggleMenu(ctx, v.ID)
	s.ErrorIs(err, domain.ErrViewNotFound)
}

// TestInteractionRefreshesTTL tests that activity keeps a view alive.
func (s *ViewServiceTestSuite) TestInteractionRefreshesTTL() {
	ctx := context.Background()
	v := s.open()

	s.now = s.now.Add(50 * time.Minute)
	_, err := s.service.ToggleMenu(ctx, v.ID)
	s.Require().NoError(err)

	s.now = s.now.Add(50 * time.Minute)
	got, err := s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.True(got.Header.MenuOpen)
}

// TestPrune tests removal of idle views.
func (s *ViewServiceTestSuite) TestPrune() {
	ctx := context.Background()
	s.open()

	s.now = s.now.Add(30 * time.Minute)
	fresh := s.open()

	s.now = s.now.Add(45 * time.Minute)
	deleted, err := s.service.Prune(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
	s.Equal(1, s.store.Len())

	_, err = s.service.Get(ctx, fresh.ID)
	s.NoError(err)
}

// TestPrune_ZeroTTL tests that a zero TTL disables pruning.
func (s *ViewServiceTestSuite) TestPrune_ZeroTTL() {
	svc := service.NewViewService(s.store, 0)
	_, err := svc.Open(context.Background())
	s.Require().NoError(err)

	deleted, err := svc.Prune(context.Background())
	s.Require().NoError(err)
	s.Zero(deleted)
}
