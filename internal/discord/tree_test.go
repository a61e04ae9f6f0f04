package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/pkg/cmd"
)

type bare struct{ name string }

func (b bare) Name() string        { return b.name }
func (b bare) Description() string { return "a command" }
func (b bare) Run(ctx context.Context, inv *cmd.Invocation) error {
	return nil
}

type withSlash struct{ bare }

func (w withSlash) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: w.name, Description: "custom def"}
}

func TestSlashDefinitionsPreferProvider(t *testing.T) {
	reg := cmd.NewRegistry()
	reg.Register(bare{name: "plain"})
	reg.Register(withSlash{bare{name: "custom"}})
	// Wrapped commands are unwrapped before the provider check.
	reg.Register(cmd.Wrap(withSlash{bare{name: "wrapped"}}, nil))

	defs := slashDefinitions(reg)
	byName := make(map[string]string)
	for _, d := range defs {
		byName[d.Name] = d.Description
	}
	if byName["plain"] != "a command" {
		t.Fatalf("plain def = %q", byName["plain"])
	}
	if byName["custom"] != "custom def" {
		t.Fatalf("provider def = %q", byName["custom"])
	}
	if byName["wrapped"] != "custom def" {
		t.Fatalf("wrapped provider def = %q", byName["wrapped"])
	}
}

func TestLocalTreeCopyAndClear(t *testing.T) {
	b := &Bot{}
	b.tree.setGlobal([]*discordgo.ApplicationCommand{{Name: "ping"}})

	if err := b.CopyGlobalTo(7); err != nil {
		t.Fatal(err)
	}
	if got := b.tree.guild[7]; len(got) != 1 || got[0].Name != "ping" {
		t.Fatalf("guild tree = %v", got)
	}

	// Copies are snapshots, not views into the global slice.
	if err := b.ClearGlobal(); err != nil {
		t.Fatal(err)
	}
	if got := b.tree.guild[7]; len(got) != 1 {
		t.Fatal("clearing global emptied the guild copy")
	}

	if err := b.ClearGuild(7); err != nil {
		t.Fatal(err)
	}
	if got := b.tree.guild[7]; len(got) != 0 {
		t.Fatalf("guild tree after clear = %v", got)
	}
}

func TestSyncRequiresConnectedSession(t *testing.T) {
	b := &Bot{}
	if _, err := b.SyncGlobal(); err == nil {
		t.Fatal("sync without a session succeeded")
	}
	if _, err := b.SyncGuild(7); err == nil {
		t.Fatal("guild sync without a session succeeded")
	}
}
