package domain

import "context"

// Ledger — журнал подтверждённых удалений. Записи дописываются без
// дедупликации; после успешного Append последующий Load видит новую запись,
// в том числе из другого процесса.
type Ledger interface {
	Load(ctx context.Context) ([]DeletionEntry, error)
	Append(ctx context.Context, entry DeletionEntry) error
}

// BackupReader читает дерево выгрузки: по одной поддиректории на канал,
// внутри — описание канала и список сообщений.
type BackupReader interface {
	ListChannels(root string) ([]string, error)
	ReadChannel(dir string) (Channel, []Message, error)
}

// RemoteMessenger — операции против живого Discord API от имени
// пользовательского токена. Код ответа возвращается вызывающему без
// интерпретации.
type RemoteMessenger interface {
	DeleteMessage(ctx context.Context, token string, channelID, messageID ID) (int, error)
	CurrentUser(ctx context.Context, token string) (RemoteUser, int, error)
}
