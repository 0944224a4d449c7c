// Package boards implements the anonymous message-board domain on top of
// the document store: threads and replies under named boards, with
// password-protected reporting and deletion.
package boards

import "time"

// DeletedReplyText replaces a reply's text when the reply is deleted. The
// reply element itself stays in the thread.
const DeletedReplyText = "[deleted]"

// Thread is a discussion thread stored in the "threads" collection. The
// privacy-sensitive fields never reach API responses.
type Thread struct {
	ID             string    `doc:"_id,omitzero" json:"_id"`
	Board          string    `doc:"board" json:"-"`
	Text           string    `doc:"text" json:"text"`
	CreatedOn      time.Time `doc:"created_on" json:"created_on"`
	BumpedOn       time.Time `doc:"bumped_on" json:"bumped_on"`
	Reported       bool      `doc:"reported" json:"-"`
	DeletePassword string    `doc:"delete_password" json:"-"`
	Replies        []Reply   `doc:"replies" json:"replies"`
}

// Reply is a single reply embedded in a thread's replies array.
type Reply struct {
	ID             string    `doc:"_id,omitzero" json:"_id"`
	Text           string    `doc:"text" json:"text"`
	CreatedOn      time.Time `doc:"created_on" json:"created_on"`
	Reported       bool      `doc:"reported" json:"-"`
	DeletePassword string    `doc:"delete_password" json:"-"`
}

// ThreadView is the API shape of a thread: private fields stripped,
// replies possibly truncated to the most recent ones.
type ThreadView struct {
	ID         string      `json:"_id"`
	Text       string      `json:"text"`
	CreatedOn  time.Time   `json:"created_on"`
	BumpedOn   time.Time   `json:"bumped_on"`
	Replies    []ReplyView `json:"replies"`
	ReplyCount int         `json:"replycount"`
}

// ReplyView is the API shape of a reply.
type ReplyView struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

func viewOfReply(r Reply) ReplyView {
	return ReplyView{ID: r.ID, Text: r.Text, CreatedOn: r.CreatedOn}
}

// viewOfThread keeps the lastReplies most recent replies, or all of them
// when lastReplies <= 0.
func viewOfThread(t Thread, lastReplies int) ThreadView {
	replies := t.Replies
	if lastReplies > 0 && len(replies) > lastReplies {
		replies = replies[len(replies)-lastReplies:]
	}
	views := make([]ReplyView, len(replies))
	for n, r := range replies {
		views[n] = viewOfReply(r)
	}
	return ThreadView{
		ID:         t.ID,
		Text:       t.Text,
		CreatedOn:  t.CreatedOn,
		BumpedOn:   t.BumpedOn,
		Replies:    views,
		ReplyCount: len(t.Replies),
	}
}
