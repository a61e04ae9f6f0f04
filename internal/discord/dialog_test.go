package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/internal/devtools"
)

func msg(channelID, authorID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: channelID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	}}
}

func TestDeliverMatchesChannelAndAuthor(t *testing.T) {
	var d dialogWaiters
	w := d.add("chan", "user")

	if d.deliver(msg("chan", "other", "nope")) {
		t.Fatal("message from another author was consumed")
	}
	if d.deliver(msg("elsewhere", "user", "nope")) {
		t.Fatal("message in another channel was consumed")
	}
	if !d.deliver(msg("chan", "user", "yes")) {
		t.Fatal("matching message was not consumed")
	}
	got := <-w.ch
	if got.Content != "yes" {
		t.Fatalf("delivered content = %q", got.Content)
	}
	// The waiter is gone; the next matching message is not consumed.
	if d.deliver(msg("chan", "user", "again")) {
		t.Fatal("consumed after the waiter was satisfied")
	}
}

func TestAwaitMessageTimesOut(t *testing.T) {
	b := &Bot{}
	_, err := b.AwaitMessage(context.Background(), "chan", "user", 10*time.Millisecond)
	if !errors.Is(err, devtools.ErrDialogTimeout) {
		t.Fatalf("err = %v, want ErrDialogTimeout", err)
	}
}

func TestAwaitMessageReceives(t *testing.T) {
	b := &Bot{}
	go func() {
		for !b.dialogs.deliver(msg("chan", "user", "answer")) {
			time.Sleep(time.Millisecond)
		}
	}()
	got, err := b.AwaitMessage(context.Background(), "chan", "user", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "answer" {
		t.Fatalf("content = %q", got.Content)
	}
}

func TestParseSnowflake(t *testing.T) {
	if got := parseSnowflake("123456789012345678"); got != 123456789012345678 {
		t.Fatalf("parseSnowflake = %d", got)
	}
	if got := parseSnowflake(""); got != 0 {
		t.Fatalf("empty snowflake = %d, want 0", got)
	}
	if got := parseSnowflake("not-a-number"); got != 0 {
		t.Fatalf("bad snowflake = %d, want 0", got)
	}
}
