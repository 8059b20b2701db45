package domain

import (
	"time"
)

// Sanitized projections. Readers never see delete_password or reported,
// neither on the thread nor on its replies. Enforced by type shape: these
// structs simply have no such fields.

type ReplyView struct {
	Id        ReplyId   `json:"id"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

type ThreadView struct {
	Id        ThreadId    `json:"id"`
	Board     Board       `json:"board"`
	Text      string      `json:"text"`
	CreatedOn time.Time   `json:"created_on"`
	BumpedOn  time.Time   `json:"bumped_on"`
	Replies   []ReplyView `json:"replies"`
}

// ThreadPreview is a board-listing entry: sanitized, replies truncated to
// the newest few, with the total reply count preserved.
type ThreadPreview struct {
	ThreadView
	ReplyCount int `json:"replycount"`
}

func (r Reply) View() ReplyView {
	return ReplyView{Id: r.Id, Text: r.Text, CreatedOn: r.CreatedOn}
}

// View strips both sanitized fields and keeps every reply in stored
// (newest first) order.
func (t Thread) View() ThreadView {
	replies := make([]ReplyView, 0, len(t.Replies))
	for _, r := range t.Replies {
		replies = append(replies, r.View())
	}
	return ThreadView{
		Id:        t.Id,
		Board:     t.Board,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   replies,
	}
}

// Preview sanitizes and keeps only the maxReplies most recent replies.
// Replies are stored newest first, so this is a prefix take. The count
// reflects the full stored sequence, not the truncated view.
func (t Thread) Preview(maxReplies int) ThreadPreview {
	view := t.View()
	if len(view.Replies) > maxReplies {
		view.Replies = view.Replies[:maxReplies]
	}
	return ThreadPreview{ThreadView: view, ReplyCount: len(t.Replies)}
}
