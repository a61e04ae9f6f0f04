package discord

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/internal/devtools"
)

// dialogWaiters routes follow-up messages to operations waiting on them. The
// match is channel plus author only; the first waiting dialog for that pair
// consumes the message before command dispatch sees it.
type dialogWaiters struct {
	mu   sync.Mutex
	list []*waiter
}

type waiter struct {
	channelID string
	authorID  string
	ch        chan *devtools.IncomingMessage
}

func (d *dialogWaiters) add(channelID, authorID string) *waiter {
	w := &waiter{channelID: channelID, authorID: authorID, ch: make(chan *devtools.IncomingMessage, 1)}
	d.mu.Lock()
	d.list = append(d.list, w)
	d.mu.Unlock()
	return w
}

func (d *dialogWaiters) remove(w *waiter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, cur := range d.list {
		if cur == w {
			d.list = append(d.list[:i], d.list[i+1:]...)
			return
		}
	}
}

// deliver hands m to the first matching waiter. Reports whether the message
// was consumed.
func (d *dialogWaiters) deliver(m *discordgo.MessageCreate) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, w := range d.list {
		if w.channelID != m.ChannelID || w.authorID != m.Author.ID {
			continue
		}
		d.list = append(d.list[:i], d.list[i+1:]...)
		w.ch <- incoming(m)
		return true
	}
	return false
}

func incoming(m *discordgo.MessageCreate) *devtools.IncomingMessage {
	msg := &devtools.IncomingMessage{Content: m.Content}
	for _, a := range m.Attachments {
		url := a.URL
		msg.Attachments = append(msg.Attachments, devtools.Attachment{
			Filename: a.Filename,
			Open: func() (io.ReadCloser, error) {
				resp, err := http.Get(url)
				if err != nil {
					return nil, err
				}
				return resp.Body, nil
			},
		})
	}
	return msg
}

// AwaitMessage blocks until the author sends another message in the channel,
// the timeout passes, or the context ends.
func (b *Bot) AwaitMessage(ctx context.Context, channelID, authorID string, timeout time.Duration) (*devtools.IncomingMessage, error) {
	w := b.dialogs.add(channelID, authorID)
	defer b.dialogs.remove(w)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case msg := <-w.ch:
		return msg, nil
	case <-timer.C:
		return nil, devtools.ErrDialogTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
