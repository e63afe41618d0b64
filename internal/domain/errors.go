package domain

import "errors"

// Ошибки движка реконсиляции. Коды ответов удалённого API ошибками не
// считаются и возвращаются вызывающему как есть.
var (
	// ErrInvalidInput — путь выгрузки не существует или не является директорией.
	ErrInvalidInput = errors.New("путь выгрузки не является директорией")
	// ErrMalformedExport — файл выгрузки отсутствует или не разбирается;
	// частичный архив не собирается.
	ErrMalformedExport = errors.New("повреждённая выгрузка")
	// ErrLedgerCorrupt — журнал удалений существует, но не читается.
	ErrLedgerCorrupt = errors.New("журнал удалений повреждён")
	// ErrRemoteUnavailable — запрос к Discord не завершился обменом.
	ErrRemoteUnavailable = errors.New("discord недоступен")
)
