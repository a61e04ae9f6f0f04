package discord

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/pkg/cmd"
)

// SlashProvider is implemented by commands that carry their own application
// command definition. Commands without one get a plain chat-input definition
// derived from their name and description.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// commandTree mirrors the local application command state. Copy and clear
// operations mutate it only; a sync pushes the relevant scope to Discord.
type commandTree struct {
	mu     sync.Mutex
	global []*discordgo.ApplicationCommand
	guild  map[int64][]*discordgo.ApplicationCommand
}

func (t *commandTree) setGlobal(defs []*discordgo.ApplicationCommand) {
	t.mu.Lock()
	t.global = defs
	t.mu.Unlock()
}

// refreshTree rebuilds the local global definitions from the live registry.
// Installed as the extension manager's change hook so loading or unloading a
// module is reflected on the next sync.
func (b *Bot) refreshTree() {
	b.tree.setGlobal(slashDefinitions(b.registry))
}

func slashDefinitions(registry *cmd.Registry) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range registry.GetAll() {
		if p, ok := cmd.Root(c).(SlashProvider); ok {
			defs = append(defs, p.SlashDefinition())
			continue
		}
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        c.Name(),
			Description: c.Description(),
		})
	}
	return defs
}

func (b *Bot) session() (*discordgo.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dg == nil || b.dg.State.User == nil {
		return nil, fmt.Errorf("session is not connected")
	}
	return b.dg, nil
}

// SyncGuild pushes the guild's local command definitions.
func (b *Bot) SyncGuild(guildID int64) (int, error) {
	dg, err := b.session()
	if err != nil {
		return 0, err
	}
	b.tree.mu.Lock()
	defs := b.tree.guild[guildID]
	b.tree.mu.Unlock()
	pushed, err := dg.ApplicationCommandBulkOverwrite(dg.State.User.ID, strconv.FormatInt(guildID, 10), defs)
	if err != nil {
		return 0, err
	}
	return len(pushed), nil
}

// SyncGlobal pushes the local global definitions.
func (b *Bot) SyncGlobal() (int, error) {
	dg, err := b.session()
	if err != nil {
		return 0, err
	}
	b.tree.mu.Lock()
	defs := b.tree.global
	b.tree.mu.Unlock()
	pushed, err := dg.ApplicationCommandBulkOverwrite(dg.State.User.ID, "", defs)
	if err != nil {
		return 0, err
	}
	return len(pushed), nil
}

// CopyGlobalTo copies the local global definitions into the guild's local
// slot. Takes effect on the guild's next sync.
func (b *Bot) CopyGlobalTo(guildID int64) error {
	b.tree.mu.Lock()
	defer b.tree.mu.Unlock()
	if b.tree.guild == nil {
		b.tree.guild = make(map[int64][]*discordgo.ApplicationCommand)
	}
	b.tree.guild[guildID] = append([]*discordgo.ApplicationCommand(nil), b.tree.global...)
	return nil
}

// ClearGlobal empties the local global definitions.
func (b *Bot) ClearGlobal() error {
	b.tree.setGlobal(nil)
	return nil
}

// ClearGuild empties the guild's local definitions.
func (b *Bot) ClearGuild(guildID int64) error {
	b.tree.mu.Lock()
	defer b.tree.mu.Unlock()
	delete(b.tree.guild, guildID)
	return nil
}
