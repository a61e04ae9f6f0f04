package devtools

import (
	"io"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/devtools/pkg/cmd"
)

// Context is the invocation-side surface an adapter must provide for
// controlled commands and delegate operations: caller identity plus the
// reply channel. Every operation terminates in exactly one Reply (sometimes
// followed by a file).
type Context interface {
	cmd.Actor
	ChannelID() string
	Reply(embed *discordgo.MessageEmbed) error
	ReplyFile(name string, r io.Reader) error
}
