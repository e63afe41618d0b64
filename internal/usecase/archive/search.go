package archive

import (
	"strings"

	"discord-archive/internal/domain"
)

// Hit — найденное сообщение с привязкой к каналу.
type Hit struct {
	ChannelID     domain.ID      `json:"channel_id"`
	ChannelKind   string         `json:"channel_kind"`
	RecipientName string         `json:"recipient_name,omitempty"`
	Message       domain.Message `json:"message"`
}

// Search отбирает сообщения архива по подстроке без учёта регистра. Пустой
// запрос совпадает со всеми сообщениями выбранных типов каналов.
func Search(arch domain.Archive, query string, includeDMs, includeGuilds bool) []Hit {
	needle := strings.ToLower(query)
	var hits []Hit
	if includeDMs {
		for _, dm := range arch.DMs {
			for _, msg := range dm.Messages {
				if strings.Contains(strings.ToLower(msg.Contents), needle) {
					hits = append(hits, Hit{
						ChannelID:     dm.ID,
						ChannelKind:   "dm",
						RecipientName: dm.RecipientName,
						Message:       msg,
					})
				}
			}
		}
	}
	if includeGuilds {
		for _, guild := range arch.Guilds {
			for _, msg := range guild.Messages {
				if strings.Contains(strings.ToLower(msg.Contents), needle) {
					hits = append(hits, Hit{
						ChannelID:   guild.ID,
						ChannelKind: "guild_text",
						Message:     msg,
					})
				}
			}
		}
	}
	return hits
}
