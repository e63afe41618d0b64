package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID — snowflake-идентификатор Discord в каноничной десятичной записи.
// Экспортёры пишут большие идентификаторы то числом, то строкой; числовое
// декодирование через float64 теряет точность, поэтому каноничная форма —
// строка, а сравнение — строковое.
type ID string

// UnmarshalJSON принимает либо строку из десятичных цифр, либо
// неотрицательный целочисленный литерал. Дробные, отрицательные и нечисловые
// значения — ошибка разбора всей записи.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("пустой идентификатор")
	}
	if data[0] == '"' {
		raw, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("идентификатор: %w", err)
		}
		if !isDecimal(raw) {
			return fmt.Errorf("идентификатор %q не является десятичным числом", raw)
		}
		*id = ID(raw)
		return nil
	}
	if _, err := strconv.ParseUint(string(data), 10, 64); err != nil {
		return fmt.Errorf("идентификатор %s: %w", data, err)
	}
	*id = ID(data)
	return nil
}

// ParseID проверяет строковый ввод (путь запроса, аргумент CLI) по тем же
// правилам, что и UnmarshalJSON.
func ParseID(s string) (ID, error) {
	if !isDecimal(s) {
		return "", fmt.Errorf("идентификатор %q не является десятичным числом", s)
	}
	return ID(s), nil
}

// String возвращает каноничную десятичную форму.
func (id ID) String() string { return string(id) }

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
