package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/internal/devtools"
	"github.com/keshon/devtools/pkg/cmd"
)

// delegateAlias is the short name of the admin command, next to the
// configured program name.
const delegateAlias = "dt"

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	if b.dialogs.deliver(m) {
		return
	}
	if !strings.HasPrefix(m.Content, b.cfg.CommandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]
	actx := newMessageContext(s, m)
	ctx := context.Background()

	if name == b.cfg.Prog || name == delegateAlias {
		tools, err := devtools.For(b)
		if err != nil {
			b.log.WithError(err).Warn("delegate invoked before initialization")
			return
		}
		if err := tools.Delegate(ctx, actx, args); err != nil {
			b.log.WithError(err).Error("delegate failed")
		}
		return
	}

	c := b.registry.Get(name)
	if c == nil {
		return
	}
	inv := &cmd.Invocation{Args: args, Data: actx}
	if err := c.Run(ctx, inv); err != nil {
		b.log.WithError(err).WithField("command", name).Error("command failed")
	}
}
