package domain

// ChannelKind описывает тип канала в выгрузке Discord.
type ChannelKind string

const (
	// ChannelKindDM — личная переписка.
	ChannelKindDM ChannelKind = "DM"
	// ChannelKindGuildText — текстовый канал сервера.
	ChannelKindGuildText ChannelKind = "GUILD_TEXT"
)

// Message — одно сообщение из выгрузки. Движок сообщения не изменяет и не
// создаёт, только отбрасывает удалённые при сборке архива.
type Message struct {
	ID          ID     `json:"ID"`
	Timestamp   string `json:"Timestamp"`
	Contents    string `json:"Contents"`
	Attachments string `json:"Attachments,omitempty"`
}

// Channel — заголовок канала из channel.json.
type Channel struct {
	ID         ID          `json:"id"`
	Type       ChannelKind `json:"type"`
	Recipients []string    `json:"recipients,omitempty"`
}

// DMConversation — личная переписка в собранном архиве.
type DMConversation struct {
	ID            ID        `json:"id"`
	RecipientID   string    `json:"recipient_id"`
	RecipientName string    `json:"recipient_name"`
	Messages      []Message `json:"messages"`
}

// GuildConversation — серверный канал в собранном архиве.
type GuildConversation struct {
	ID       ID        `json:"id"`
	Messages []Message `json:"messages"`
}

// Archive — итог сборки: все личные и серверные переписки. Порядок каналов
// повторяет порядок обхода директории выгрузки и не нормализуется.
type Archive struct {
	DMs    []DMConversation    `json:"dms"`
	Guilds []GuildConversation `json:"guilds"`
}

// DeletionEntry — запись журнала об удалённом из Discord сообщении.
// Поля хранятся обычными строками: журнал переживает версии формата выгрузки
// и не обязан содержать только числовые идентификаторы.
type DeletionEntry struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

// RemoteUser — профиль владельца токена из /users/@me.
type RemoteUser struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// MessageIDSet собирает message_id всех записей журнала в набор для фильтра.
// Набор общий для всех каналов, channel_id записей не учитывается.
func MessageIDSet(entries []DeletionEntry) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		set[entry.MessageID] = struct{}{}
	}
	return set
}
