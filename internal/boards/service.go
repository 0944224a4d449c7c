package boards

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"anonboard/adapter/data"
	"anonboard/adapter/idgenerator"
	"anonboard/adapter/timegetter"
	"anonboard/domain"
)

// recentThreadCount and recentReplyCount bound the board listing: the 10
// most recently bumped threads, each with its 3 most recent replies.
const (
	recentThreadCount = 10
	recentReplyCount  = 3
)

// hiddenFields strips the privacy-sensitive thread fields from reads.
var hiddenFields = domain.Projection{"delete_password": 0, "reported": 0}

// Service implements the board operations on top of the collection
// contract. It is the only consumer of the store.
type Service struct {
	threads domain.Collection
	idGen   domain.IDGenerator
	clock   domain.TimeGetter
	cost    int
}

// NewService returns a Service backed by the store's "threads" collection.
func NewService(store domain.Store, options ...ServiceOption) *Service {
	s := &Service{
		threads: store.Collection("threads"),
		idGen:   idgenerator.NewIDGenerator(),
		clock:   timegetter.NewTimeGetter(),
		cost:    bcrypt.DefaultCost,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// CreateThread inserts a new thread on the given board. The bump timestamp
// starts equal to the creation timestamp.
func (s *Service) CreateThread(ctx context.Context, board, text, password string) (ThreadView, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return ThreadView{}, fmt.Errorf("hashing password: %w", err)
	}

	now := s.clock.GetTime()
	t := Thread{
		Board:          board,
		Text:           text,
		CreatedOn:      now,
		BumpedOn:       now,
		DeletePassword: string(hash),
		Replies:        []Reply{},
	}

	id, err := s.threads.InsertOne(ctx, t)
	if err != nil {
		return ThreadView{}, fmt.Errorf("inserting thread: %w", err)
	}
	t.ID = id
	return viewOfThread(t, 0), nil
}

// RecentThreads lists the board's 10 most recently bumped threads, each
// carrying its 3 most recent replies.
func (s *Service) RecentThreads(ctx context.Context, board string) ([]ThreadView, error) {
	cur, err := s.threads.Find(ctx, data.M{"board": board},
		domain.WithFindProjection(hiddenFields))
	if err != nil {
		return nil, fmt.Errorf("finding threads: %w", err)
	}

	var threads []Thread
	err = cur.
		Sort(domain.Sort{{Key: "bumped_on", Order: -1}}).
		Limit(recentThreadCount).
		Scan(ctx, &threads)
	if err != nil {
		return nil, fmt.Errorf("scanning threads: %w", err)
	}

	views := make([]ThreadView, len(threads))
	for n, t := range threads {
		views[n] = viewOfThread(t, recentReplyCount)
	}
	return views, nil
}

// Thread returns the full thread with every reply, private fields
// stripped.
func (s *Service) Thread(ctx context.Context, board, threadID string) (ThreadView, error) {
	var t Thread
	err := s.threads.FindOne(ctx, data.M{"board": board, "_id": threadID}, &t,
		domain.WithFindProjection(hiddenFields))
	if errors.Is(err, domain.ErrNotFound) {
		return ThreadView{}, ErrThreadNotFound
	}
	if err != nil {
		return ThreadView{}, fmt.Errorf("finding thread: %w", err)
	}
	return viewOfThread(t, 0), nil
}

// ReportThread flags a thread as reported.
func (s *Service) ReportThread(ctx context.Context, board, threadID string) error {
	matched, err := s.threads.UpdateOne(ctx,
		data.M{"board": board, "_id": threadID},
		data.M{"$set": data.M{"reported": true}})
	if err != nil {
		return fmt.Errorf("reporting thread: %w", err)
	}
	if matched == 0 {
		return ErrThreadNotFound
	}
	return nil
}

// DeleteThread removes a thread after verifying its delete password.
func (s *Service) DeleteThread(ctx context.Context, board, threadID, password string) error {
	var t Thread
	err := s.threads.FindOne(ctx, data.M{"board": board, "_id": threadID}, &t)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrThreadNotFound
	}
	if err != nil {
		return fmt.Errorf("finding thread: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(t.DeletePassword), []byte(password)) != nil {
		return ErrIncorrectPassword
	}

	if _, err := s.threads.DeleteOne(ctx, data.M{"_id": threadID}); err != nil {
		return fmt.Errorf("deleting thread: %w", err)
	}
	return nil
}

// AddReply appends a reply to a thread and bumps the thread's bump
// timestamp to the reply's creation time.
func (s *Service) AddReply(ctx context.Context, board, threadID, text, password string) (ReplyView, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return ReplyView{}, fmt.Errorf("hashing password: %w", err)
	}

	now := s.clock.GetTime()
	r := Reply{
		ID:             s.idGen.NewID(),
		Text:           text,
		CreatedOn:      now,
		DeletePassword: string(hash),
	}
	replyDoc, err := data.NewDocument(r)
	if err != nil {
		return ReplyView{}, fmt.Errorf("converting reply: %w", err)
	}

	matched, err := s.threads.UpdateOne(ctx,
		data.M{"board": board, "_id": threadID},
		data.M{
			"$set":  data.M{"bumped_on": now},
			"$push": data.M{"replies": replyDoc},
		})
	if err != nil {
		return ReplyView{}, fmt.Errorf("adding reply: %w", err)
	}
	if matched == 0 {
		return ReplyView{}, ErrThreadNotFound
	}
	return viewOfReply(r), nil
}

// ReportReply flags one reply as reported, leaving its siblings untouched.
func (s *Service) ReportReply(ctx context.Context, board, threadID, replyID string) error {
	matched, err := s.threads.UpdateOne(ctx,
		data.M{"board": board, "_id": threadID, "replies._id": replyID},
		data.M{"$set": data.M{"replies.$.reported": true}})
	if err != nil {
		return fmt.Errorf("reporting reply: %w", err)
	}
	if matched == 0 {
		return ErrReplyNotFound
	}
	return nil
}

// DeleteReply soft-deletes a reply after verifying its delete password:
// the text is replaced, the element stays in the array.
func (s *Service) DeleteReply(ctx context.Context, board, threadID, replyID, password string) error {
	var t Thread
	err := s.threads.FindOne(ctx, data.M{"board": board, "_id": threadID}, &t)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrThreadNotFound
	}
	if err != nil {
		return fmt.Errorf("finding thread: %w", err)
	}

	var reply *Reply
	for n := range t.Replies {
		if t.Replies[n].ID == replyID {
			reply = &t.Replies[n]
			break
		}
	}
	if reply == nil {
		return ErrReplyNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(reply.DeletePassword), []byte(password)) != nil {
		return ErrIncorrectPassword
	}

	_, err = s.threads.UpdateOne(ctx,
		data.M{"_id": threadID, "replies._id": replyID},
		data.M{"$set": data.M{"replies.$.text": DeletedReplyText}})
	if err != nil {
		return fmt.Errorf("deleting reply: %w", err)
	}
	return nil
}
