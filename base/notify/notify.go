package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/arcadia-music/goapi/base/ctx"
)

type Field struct {
	Name  string
	Value string
}

type Message struct {
	Title       string
	Description string
	Url         string
	ImageUrl    string
	Fields      []Field
}

type Notifier interface {
	Notify(c ctx.Ctx, msg *Message) error
}

type DiscordConfig struct {
	BotKey    string
	ChannelId string
}

type discordNotifier struct {
	channelId string
	discord   *discordgo.Session
}

// NewDiscord posts messages as embeds to a discord channel
func NewDiscord(cfg DiscordConfig) (Notifier, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordNotifier{cfg.ChannelId, discord}, nil
}

func toEmbed(msg *Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Description,
		URL:         msg.Url,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(msg.Fields)),
	}
	if len(msg.ImageUrl) > 0 {
		embed.Image = &discordgo.MessageEmbedImage{URL: msg.ImageUrl}
	}
	for _, f := range msg.Fields {
		if len(f.Value) == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: true})
	}
	return embed
}

func (n *discordNotifier) Notify(c ctx.Ctx, msg *Message) error {
	if _, err := n.discord.ChannelMessageSendEmbed(n.channelId, toEmbed(msg)); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

type nop struct{}

// Nop drops every message
func Nop() Notifier {
	return nop{}
}

func (nop) Notify(ctx.Ctx, *Message) error {
	return nil
}
