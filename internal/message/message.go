// Package message renders the colored, footer-stamped embeds every devtools
// operation replies with.
package message

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	colorDefault  = 0xeb9b2a
	colorPositive = 0x43b582
	colorNegative = 0xeb4747
)

// footerReference is stamped on every reply.
const footerReference = "https://github.com/keshon/devtools"

// CommandLocked is the fixed notice sent when access is denied.
const CommandLocked = "This command is currently locked."

func build(body string, color int) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetDescription("```\n" + body + "```").
		SetColor(color).
		SetFooter(footerReference).
		MessageEmbed
}

// Def renders a neutral (amber) reply.
func Def(body string) *discordgo.MessageEmbed { return build(body, colorDefault) }

// Pos renders a success (green) reply.
func Pos(body string) *discordgo.MessageEmbed { return build(body, colorPositive) }

// Neg renders a failure (red) reply.
func Neg(body string) *discordgo.MessageEmbed { return build(body, colorNegative) }

// RawPos renders a green reply without the code fence, for dialog prompts that
// mix fenced text with timestamp markup.
func RawPos(body string) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetDescription(body).
		SetColor(colorPositive).
		SetFooter(footerReference).
		MessageEmbed
}
