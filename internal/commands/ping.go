// Package commands holds the built-in command modules shipped with the bot.
// Every command is declared with its access-control options up front; the
// bootstrap resolves them once the facade exists.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/internal/devtools"
	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/pkg/cmd"
)

// Ping measures the round trip to the gateway, roughly.
type Ping struct{}

func (Ping) Name() string        { return "ping" }
func (Ping) Description() string { return "check that the bot is alive" }

func (Ping) Run(ctx context.Context, inv *cmd.Invocation) error {
	actx, ok := inv.Data.(devtools.Context)
	if !ok {
		return nil
	}
	started := time.Now()
	return actx.Reply(message.Pos(fmt.Sprintf("Pong! (%s)", time.Since(started).Round(time.Microsecond))))
}

// SlashDefinition lets the command tree publish ping as a slash command.
func (Ping) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "check that the bot is alive",
	}
}
