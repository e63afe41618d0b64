package domain

import (
	"encoding/json"
	"testing"
)

func TestIDNormalization(t *testing.T) {
	var fromNumber, fromString ID
	if err := json.Unmarshal([]byte(`123456789012345678`), &fromNumber); err != nil {
		t.Fatalf("не ожидали ошибку для числа: %v", err)
	}
	if err := json.Unmarshal([]byte(`"123456789012345678"`), &fromString); err != nil {
		t.Fatalf("не ожидали ошибку для строки: %v", err)
	}
	if fromNumber != fromString {
		t.Fatalf("ожидали одинаковую каноничную форму, получили %q и %q", fromNumber, fromString)
	}
	if fromNumber.String() != "123456789012345678" {
		t.Fatalf("ожидали десятичную строку, получили %q", fromNumber)
	}
}

func TestIDRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"float":             `12.5`,
		"отрицательное":     `-1`,
		"нечисловая строка": `"abc"`,
		"пустая строка":     `""`,
		"экспонента":        `1e10`,
		"null":              `null`,
	}
	for name, raw := range cases {
		var id ID
		if err := json.Unmarshal([]byte(raw), &id); err == nil {
			t.Fatalf("%s: ожидали ошибку для %s, получили %q", name, raw, id)
		}
	}
}

func TestMessageIDSetIsGlobal(t *testing.T) {
	entries := []DeletionEntry{
		{ChannelID: "A", MessageID: "99"},
		{ChannelID: "B", MessageID: "99"},
		{ChannelID: "A", MessageID: "7"},
	}
	set := MessageIDSet(entries)
	if len(set) != 2 {
		t.Fatalf("ожидали 2 уникальных id, получили %d", len(set))
	}
	if _, ok := set["99"]; !ok {
		t.Fatalf("ожидали id 99 в наборе")
	}
}
