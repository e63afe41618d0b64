package deletion

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"discord-archive/internal/domain"
	"discord-archive/internal/infra/metrics"
)

// Service выполняет удаление сообщения в Discord и фиксирует подтверждённое
// удаление в журнале.
type Service struct {
	remote domain.RemoteMessenger
	ledger domain.Ledger
	log    zerolog.Logger
}

// NewService создаёт сервис удаления.
func NewService(remote domain.RemoteMessenger, ledger domain.Ledger, logger zerolog.Logger) *Service {
	return &Service{remote: remote, ledger: ledger, log: logger}
}

// Delete удаляет сообщение и возвращает код ответа Discord. Коды 2xx и 404
// означают, что сообщения на сервере больше нет — только тогда пара попадает
// в журнал. Остальные коды возвращаются без записи, повторы не выполняются.
func (s *Service) Delete(ctx context.Context, token string, channelID, messageID domain.ID) (int, error) {
	opID := uuid.NewString()

	status, err := s.remote.DeleteMessage(ctx, token, channelID, messageID)
	if err != nil {
		metrics.DeleteRequestsTotal.WithLabelValues("transport_error").Inc()
		return 0, fmt.Errorf("удаление %s/%s: %w", channelID, messageID, err)
	}
	metrics.DeleteRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()

	if !gone(status) {
		s.log.Debug().
			Str("op_id", opID).
			Str("channel_id", string(channelID)).
			Str("message_id", string(messageID)).
			Int("status", status).
			Msg("discord отказал в удалении")
		return status, nil
	}

	entry := domain.DeletionEntry{ChannelID: string(channelID), MessageID: string(messageID)}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return status, fmt.Errorf("запись в журнал: %w", err)
	}
	s.log.Info().
		Str("op_id", opID).
		Str("channel_id", string(channelID)).
		Str("message_id", string(messageID)).
		Int("status", status).
		Msg("сообщение удалено")
	return status, nil
}

// gone сообщает, что сообщения на сервере больше нет: успешное удаление либо
// сообщение уже отсутствовало.
func gone(status int) bool {
	return status == http.StatusNotFound || (status >= 200 && status < 300)
}
