package discord

import (
	"io"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// messageContext implements devtools.Context for a prefix-command message.
type messageContext struct {
	s       *discordgo.Session
	userID  int64
	guildID int64
	channel string
}

func newMessageContext(s *discordgo.Session, m *discordgo.MessageCreate) *messageContext {
	return &messageContext{
		s:       s,
		userID:  parseSnowflake(m.Author.ID),
		guildID: parseSnowflake(m.GuildID),
		channel: m.ChannelID,
	}
}

// parseSnowflake converts a Discord ID to its numeric form. An empty or
// malformed ID (e.g. no guild on a direct message) becomes zero.
func parseSnowflake(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (c *messageContext) UserID() int64     { return c.userID }
func (c *messageContext) GuildID() int64    { return c.guildID }
func (c *messageContext) ChannelID() string { return c.channel }

func (c *messageContext) Reply(embed *discordgo.MessageEmbed) error {
	_, err := c.s.ChannelMessageSendEmbed(c.channel, embed)
	return err
}

func (c *messageContext) ReplyFile(name string, r io.Reader) error {
	_, err := c.s.ChannelFileSend(c.channel, name, r)
	return err
}
