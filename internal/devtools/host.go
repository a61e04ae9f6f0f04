package devtools

import (
	"context"
	"errors"
	"io"
	"time"
)

// Host is the bot runtime the operations drive. Close shuts it down. Hosts
// may additionally implement ExtensionHost, TreeHost and DialogHost; the
// operations that need a capability reject their input when the host lacks it.
type Host interface {
	Close() error
}

// ExtensionHost loads, unloads and reloads named extension modules.
type ExtensionHost interface {
	Loaded() []string
	Available() ([]string, error)
	Load(name string) error
	Unload(name string) error
	Reload(name string) error
}

// TreeHost syncs the application command tree per guild or globally.
type TreeHost interface {
	SyncGuild(guildID int64) (int, error)
	SyncGlobal() (int, error)
	CopyGlobalTo(guildID int64) error
	ClearGlobal() error
	ClearGuild(guildID int64) error
}

// ErrDialogTimeout is returned by AwaitMessage when the wait expires.
var ErrDialogTimeout = errors.New("dialog timed out")

// IncomingMessage is a follow-up message delivered to a waiting dialog.
type IncomingMessage struct {
	Content     string
	Attachments []Attachment
}

// Attachment is one file attached to an incoming message. Open streams its
// content.
type Attachment struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// DialogHost waits for the next message in a channel from a given author. The
// predicate is channel+author equality only: any message from that author in
// that channel is consumed as the answer, including unrelated ones — a known
// looseness kept from the wire behavior this implements.
type DialogHost interface {
	AwaitMessage(ctx context.Context, channelID, authorID string, timeout time.Duration) (*IncomingMessage, error)
}

// dialogTimeout bounds every confirmation dialog.
const dialogTimeout = 300 * time.Second
