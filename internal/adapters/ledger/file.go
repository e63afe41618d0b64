package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"discord-archive/internal/domain"
)

const fileName = "deleted_messages.json"

// document — формат файла журнала: один объект с единственным массивом.
type document struct {
	DeletedMessages []domain.DeletionEntry `json:"deleted_messages"`
}

// FileLedger хранит журнал удалений в одном JSON-файле внутри директории
// данных. Цикл load-append-rewrite — критическая секция: мьютекс внутри
// процесса, flock между процессами, замена файла через временный с rename.
type FileLedger struct {
	dir string
	mu  sync.Mutex
}

var _ domain.Ledger = (*FileLedger)(nil)

// NewFileLedger создаёт журнал в указанной директории данных. Директория
// создаётся при первой записи, чтение её не создаёт.
func NewFileLedger(dir string) *FileLedger { return &FileLedger{dir: dir} }

func (l *FileLedger) path() string { return filepath.Join(l.dir, fileName) }

// Load возвращает все записи журнала. Отсутствующий файл — пустой журнал
// первого запуска, повреждённый — ошибка: молча терять историю удалений
// хуже, чем остановиться.
func (l *FileLedger) Load(ctx context.Context) ([]domain.DeletionEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Append дописывает запись и перезаписывает документ целиком. Дубликаты не
// схлопываются: повторное удаление того же сообщения даёт вторую запись.
func (l *FileLedger) Append(ctx context.Context, entry domain.DeletionEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("создание директории данных: %w", err)
	}

	lock := flock.New(l.path() + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("блокировка журнала: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	entries, err := l.read()
	if err != nil {
		return err
	}
	doc := document{DeletedMessages: append(entries, entry)}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация журнала: %w", err)
	}

	tmp := l.path() + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("запись журнала: %w", err)
	}
	if err := os.Rename(tmp, l.path()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("замена журнала: %w", err)
	}
	return nil
}

func (l *FileLedger) read() ([]domain.DeletionEntry, error) {
	data, err := os.ReadFile(l.path())
	if errors.Is(err, os.ErrNotExist) {
		return []domain.DeletionEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение журнала: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerCorrupt, err)
	}
	if doc.DeletedMessages == nil {
		doc.DeletedMessages = []domain.DeletionEntry{}
	}
	return doc.DeletedMessages, nil
}
