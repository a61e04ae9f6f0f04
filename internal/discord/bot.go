// Package discord adapts the transport-agnostic command core to a Discord
// session: prefix dispatch, embed replies, follow-up dialogs and application
// command tree syncing.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/keshon/devtools/internal/config"
	"github.com/keshon/devtools/internal/extensions"
	"github.com/keshon/devtools/pkg/cmd"
)

// Bot is the Discord adapter. It implements devtools.Host along with the
// optional extension, command-tree and dialog capabilities.
type Bot struct {
	dg  *discordgo.Session
	cfg *config.Config
	log *logrus.Logger

	registry *cmd.Registry
	exts     *extensions.Manager
	dialogs  dialogWaiters
	tree     commandTree

	mu     sync.Mutex
	closed chan struct{}
	once   sync.Once
}

// NewBot builds the adapter around the given registry. The extension manager
// operates on the same registry, so loading a module makes its commands
// dispatchable immediately.
func NewBot(cfg *config.Config, registry *cmd.Registry, log *logrus.Logger) *Bot {
	b := &Bot{
		cfg:      cfg,
		log:      log,
		registry: registry,
		exts:     extensions.NewManager(registry),
		closed:   make(chan struct{}),
	}
	b.exts.OnChange(b.refreshTree)
	b.refreshTree()
	return b
}

// Extensions exposes the extension manager so the bootstrap can seed the
// catalog before the session opens.
func (b *Bot) Extensions() *extensions.Manager {
	return b.exts
}

// Run opens the session and blocks until the context is cancelled or the bot
// is closed through the admin command.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.mu.Lock()
	b.dg = dg
	b.mu.Unlock()

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	select {
	case <-ctx.Done():
	case <-b.closed:
	}
	b.log.Info("shutdown signal received, cleaning up")
	return nil
}

// Close shuts the adapter down. Safe to call from a command handler while the
// run loop is live.
func (b *Bot) Close() error {
	b.once.Do(func() { close(b.closed) })
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.WithFields(logrus.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("session ready")
}
