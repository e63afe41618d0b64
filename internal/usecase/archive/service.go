package archive

import (
	"context"
	"fmt"
	"time"

	"discord-archive/internal/domain"
	"discord-archive/internal/infra/metrics"
)

// Service строит архив переписки из выгрузки, вычитая сообщения, уже
// удалённые из Discord по журналу.
type Service struct {
	reader domain.BackupReader
	ledger domain.Ledger
}

// NewService создаёт сервис архива.
func NewService(reader domain.BackupReader, ledger domain.Ledger) *Service {
	return &Service{reader: reader, ledger: ledger}
}

// Build читает дерево выгрузки и собирает архив. Любая ошибка чтения канала
// прерывает сборку целиком: частичный архив исказил бы картину удалений.
// Порядок каналов повторяет порядок обхода директории, порядок сообщений —
// порядок в файле.
func (s *Service) Build(ctx context.Context, root string) (domain.Archive, error) {
	start := time.Now()

	// Валидация корня идёт до обращения к журналу.
	dirs, err := s.reader.ListChannels(root)
	if err != nil {
		return domain.Archive{}, err
	}

	entries, err := s.ledger.Load(ctx)
	if err != nil {
		return domain.Archive{}, err
	}
	deleted := domain.MessageIDSet(entries)

	arch := domain.Archive{
		DMs:    []domain.DMConversation{},
		Guilds: []domain.GuildConversation{},
	}
	for _, dir := range dirs {
		channel, messages, err := s.reader.ReadChannel(dir)
		if err != nil {
			return domain.Archive{}, fmt.Errorf("канал %s: %w", dir, err)
		}
		kept := FilterDeleted(messages, deleted)
		metrics.ArchiveMessagesFiltered.Add(float64(len(messages) - len(kept)))

		switch channel.Type {
		case domain.ChannelKindDM:
			dm, ok := classifyDM(channel, kept)
			if !ok {
				metrics.ArchiveChannelsTotal.WithLabelValues("skipped").Inc()
				continue
			}
			arch.DMs = append(arch.DMs, dm)
			metrics.ArchiveChannelsTotal.WithLabelValues("dm").Inc()
		case domain.ChannelKindGuildText:
			arch.Guilds = append(arch.Guilds, domain.GuildConversation{ID: channel.ID, Messages: kept})
			metrics.ArchiveChannelsTotal.WithLabelValues("guild_text").Inc()
		default:
			metrics.ArchiveChannelsTotal.WithLabelValues("skipped").Inc()
		}
	}

	metrics.ArchiveBuildSeconds.Observe(time.Since(start).Seconds())
	return arch, nil
}
