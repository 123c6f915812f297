package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestConversation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("new conversation has empty preview", func(t *testing.T) {
		c := model.NewConversation("user-a", "user-b", now)

		gt.Value(t, c.LastMessage).Equal("")
		gt.Value(t, c.Type).Equal(model.ConversationTypeKnown)
		gt.Array(t, c.Participants).Length(2)
		gt.Bool(t, c.LastMessageAt.Equal(now)).True()
		gt.Bool(t, c.CreatedAt.Equal(now)).True()
	})

	t.Run("participant check", func(t *testing.T) {
		c := model.NewConversation("user-a", "user-b", now)

		gt.Bool(t, c.HasParticipant("user-a")).True()
		gt.Bool(t, c.HasParticipant("user-b")).True()
		gt.Bool(t, c.HasParticipant("user-c")).False()
	})
}

func TestPreview(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		gt.Value(t, model.Preview("hello")).Equal("hello")
	})

	t.Run("long text truncates to preview length", func(t *testing.T) {
		long := strings.Repeat("a", 120)
		gt.Value(t, model.Preview(long)).Equal(strings.Repeat("a", model.PreviewLength))
	})

	t.Run("multibyte text truncates on rune boundary", func(t *testing.T) {
		long := strings.Repeat("あ", 80)
		gt.Value(t, model.Preview(long)).Equal(strings.Repeat("あ", model.PreviewLength))
	})
}
