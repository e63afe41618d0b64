package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"discord-archive/internal/domain"
)

const (
	channelFile  = "channel.json"
	messagesFile = "messages.json"
)

// Reader читает дерево выгрузки Discord с локального диска.
type Reader struct{}

var _ domain.BackupReader = (*Reader)(nil)

// NewReader создаёт читателя выгрузки.
func NewReader() *Reader { return &Reader{} }

// ListChannels возвращает поддиректории корня выгрузки, по одной на канал.
// Файлы в корне пропускаются. Порядок — порядок обхода файловой системы.
func (r *Reader) ListChannels(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, root)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("чтение корня выгрузки: %w", err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs, nil
}

// ReadChannel разбирает channel.json и messages.json одной директории.
// Отсутствие любого из файлов или ошибка разбора, включая нечисловой
// идентификатор, делает всю выгрузку непригодной.
func (r *Reader) ReadChannel(dir string) (domain.Channel, []domain.Message, error) {
	var channel domain.Channel
	if err := readJSON(filepath.Join(dir, channelFile), &channel); err != nil {
		return domain.Channel{}, nil, err
	}
	var messages []domain.Message
	if err := readJSON(filepath.Join(dir, messagesFile), &messages); err != nil {
		return domain.Channel{}, nil, err
	}
	return channel, messages, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: чтение %s: %v", domain.ErrMalformedExport, filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: разбор %s: %v", domain.ErrMalformedExport, filepath.Base(path), err)
	}
	return nil
}
