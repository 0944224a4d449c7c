package boards

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"anonboard/adapter/store"
)

// tickingClock advances one second per reading, so creation and bump
// timestamps are distinct and ordered.
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) GetTime() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("reply-%d", g.n)
}

type ServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	svc *Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = NewService(store.NewStore(),
		WithTimeGetter(&tickingClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}),
		WithIDGenerator(&seqIDs{}),
		WithBcryptCost(bcrypt.MinCost))
}

// A new thread starts with no replies and a bump timestamp equal to its
// creation timestamp.
func (s *ServiceTestSuite) TestCreateThread() {
	view, err := s.svc.CreateThread(s.ctx, "general", "first thread", "pass")
	s.NoError(err)

	s.Len(view.ID, 24)
	s.Equal("first thread", view.Text)
	s.Equal(view.CreatedOn, view.BumpedOn)
	s.Empty(view.Replies)
	s.Zero(view.ReplyCount)
}

// The delete password is stored hashed: the plaintext unlocks deletion, the
// hash itself does not.
func (s *ServiceTestSuite) TestPasswordIsHashed() {
	view, err := s.svc.CreateThread(s.ctx, "general", "t", "letmein")
	s.NoError(err)

	hash, _ := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	s.ErrorIs(s.svc.DeleteThread(s.ctx, "general", view.ID, string(hash)), ErrIncorrectPassword)
	s.NoError(s.svc.DeleteThread(s.ctx, "general", view.ID, "letmein"))
}

// The listing returns at most the 10 most recently bumped threads, newest
// first.
func (s *ServiceTestSuite) TestRecentThreadsWindow() {
	var ids []string
	for n := range 12 {
		view, err := s.svc.CreateThread(s.ctx, "general", fmt.Sprintf("thread %d", n), "pw")
		s.NoError(err)
		ids = append(ids, view.ID)
	}
	_, err := s.svc.CreateThread(s.ctx, "other", "elsewhere", "pw")
	s.NoError(err)

	views, err := s.svc.RecentThreads(s.ctx, "general")
	s.NoError(err)
	s.Len(views, 10)

	// newest first: threads 11 down to 2
	for n, view := range views {
		s.Equal(ids[11-n], view.ID)
	}
}

// Replying bumps a thread to the front of its board's listing.
func (s *ServiceTestSuite) TestReplyBumpsThread() {
	first, err := s.svc.CreateThread(s.ctx, "general", "first", "pw")
	s.NoError(err)
	_, err = s.svc.CreateThread(s.ctx, "general", "second", "pw")
	s.NoError(err)

	reply, err := s.svc.AddReply(s.ctx, "general", first.ID, "bump", "pw")
	s.NoError(err)

	views, err := s.svc.RecentThreads(s.ctx, "general")
	s.NoError(err)
	s.Equal(first.ID, views[0].ID)
	s.Equal(reply.CreatedOn, views[0].BumpedOn)
}

// Listed threads carry only their 3 most recent replies but report the full
// count.
func (s *ServiceTestSuite) TestRecentThreadsTruncatesReplies() {
	view, err := s.svc.CreateThread(s.ctx, "general", "busy", "pw")
	s.NoError(err)
	for n := range 5 {
		_, err := s.svc.AddReply(s.ctx, "general", view.ID, fmt.Sprintf("reply %d", n), "pw")
		s.NoError(err)
	}

	views, err := s.svc.RecentThreads(s.ctx, "general")
	s.NoError(err)
	s.Require().Len(views, 1)

	s.Equal(5, views[0].ReplyCount)
	s.Require().Len(views[0].Replies, 3)
	s.Equal("reply 2", views[0].Replies[0].Text)
	s.Equal("reply 3", views[0].Replies[1].Text)
	s.Equal("reply 4", views[0].Replies[2].Text)
}

// The single-thread view carries every reply in insertion order.
func (s *ServiceTestSuite) TestThread() {
	view, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)
	for n := range 5 {
		_, err := s.svc.AddReply(s.ctx, "general", view.ID, fmt.Sprintf("reply %d", n), "pw")
		s.NoError(err)
	}

	got, err := s.svc.Thread(s.ctx, "general", view.ID)
	s.NoError(err)
	s.Equal(5, got.ReplyCount)
	s.Require().Len(got.Replies, 5)
	s.Equal("reply 0", got.Replies[0].Text)
	s.Equal("reply-1", got.Replies[0].ID)

	_, err = s.svc.Thread(s.ctx, "general", "unknown")
	s.ErrorIs(err, ErrThreadNotFound)

	// board scoping: the same identifier on another board is not found
	_, err = s.svc.Thread(s.ctx, "other", view.ID)
	s.ErrorIs(err, ErrThreadNotFound)
}

func (s *ServiceTestSuite) TestReportThread() {
	view, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)

	s.NoError(s.svc.ReportThread(s.ctx, "general", view.ID))
	s.ErrorIs(s.svc.ReportThread(s.ctx, "general", "unknown"), ErrThreadNotFound)
	s.ErrorIs(s.svc.ReportThread(s.ctx, "other", view.ID), ErrThreadNotFound)
}

func (s *ServiceTestSuite) TestDeleteThread() {
	view, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)

	s.ErrorIs(s.svc.DeleteThread(s.ctx, "general", view.ID, "wrong"), ErrIncorrectPassword)
	_, err = s.svc.Thread(s.ctx, "general", view.ID)
	s.NoError(err)

	s.NoError(s.svc.DeleteThread(s.ctx, "general", view.ID, "pw"))
	_, err = s.svc.Thread(s.ctx, "general", view.ID)
	s.ErrorIs(err, ErrThreadNotFound)

	s.ErrorIs(s.svc.DeleteThread(s.ctx, "general", view.ID, "pw"), ErrThreadNotFound)
}

func (s *ServiceTestSuite) TestAddReply() {
	thread, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)

	reply, err := s.svc.AddReply(s.ctx, "general", thread.ID, "hello", "rpw")
	s.NoError(err)
	s.Equal("reply-1", reply.ID)
	s.Equal("hello", reply.Text)

	_, err = s.svc.AddReply(s.ctx, "general", "unknown", "hello", "rpw")
	s.ErrorIs(err, ErrThreadNotFound)
}

func (s *ServiceTestSuite) TestReportReply() {
	thread, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)
	reply, err := s.svc.AddReply(s.ctx, "general", thread.ID, "r", "rpw")
	s.NoError(err)

	s.NoError(s.svc.ReportReply(s.ctx, "general", thread.ID, reply.ID))
	s.ErrorIs(s.svc.ReportReply(s.ctx, "general", thread.ID, "unknown"), ErrReplyNotFound)
	s.ErrorIs(s.svc.ReportReply(s.ctx, "general", "unknown", reply.ID), ErrReplyNotFound)
}

// Deleting a reply replaces its text; the element stays in the thread.
func (s *ServiceTestSuite) TestDeleteReply() {
	thread, err := s.svc.CreateThread(s.ctx, "general", "t", "pw")
	s.NoError(err)
	first, err := s.svc.AddReply(s.ctx, "general", thread.ID, "first", "pw1")
	s.NoError(err)
	second, err := s.svc.AddReply(s.ctx, "general", thread.ID, "second", "pw2")
	s.NoError(err)

	s.ErrorIs(s.svc.DeleteReply(s.ctx, "general", thread.ID, first.ID, "pw2"), ErrIncorrectPassword)
	s.NoError(s.svc.DeleteReply(s.ctx, "general", thread.ID, first.ID, "pw1"))

	got, err := s.svc.Thread(s.ctx, "general", thread.ID)
	s.NoError(err)
	s.Require().Len(got.Replies, 2)
	s.Equal(DeletedReplyText, got.Replies[0].Text)
	s.Equal("second", got.Replies[1].Text)
	s.Equal(second.ID, got.Replies[1].ID)

	s.ErrorIs(s.svc.DeleteReply(s.ctx, "general", thread.ID, "unknown", "pw1"), ErrReplyNotFound)
	s.ErrorIs(s.svc.DeleteReply(s.ctx, "general", "unknown", first.ID, "pw1"), ErrThreadNotFound)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
