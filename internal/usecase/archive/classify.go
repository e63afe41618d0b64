package archive

import "discord-archive/internal/domain"

// Выгрузка активного диалога может перечислять удалённый аккаунт первым.
const deletedUserSentinel = "Deleted User"

// classifyDM превращает DM-канал в диалог архива. Каналы не ровно с двумя
// участниками — устаревший формат, пропускаются без ошибки. Отображаемое имя
// берётся из первого участника, если тот не удалён; recipient_id всегда
// второй участник.
func classifyDM(channel domain.Channel, messages []domain.Message) (domain.DMConversation, bool) {
	if len(channel.Recipients) != 2 {
		return domain.DMConversation{}, false
	}
	name := channel.Recipients[0]
	if name == deletedUserSentinel {
		name = channel.Recipients[1]
	}
	return domain.DMConversation{
		ID:            channel.ID,
		RecipientID:   channel.Recipients[1],
		RecipientName: name,
		Messages:      messages,
	}, true
}

// FilterDeleted возвращает подпоследовательность сообщений, id которых нет в
// наборе удалённых, с сохранением порядка. Набор общий для всех каналов:
// snowflake уникальны глобально, поэтому channel_id записей журнала при
// фильтрации не проверяется.
func FilterDeleted(messages []domain.Message, deleted map[string]struct{}) []domain.Message {
	if len(deleted) == 0 {
		return messages
	}
	kept := make([]domain.Message, 0, len(messages))
	for _, msg := range messages {
		if _, ok := deleted[string(msg.ID)]; ok {
			continue
		}
		kept = append(kept, msg)
	}
	return kept
}
