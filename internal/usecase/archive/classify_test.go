package archive

import (
	"testing"

	"discord-archive/internal/domain"
)

func TestClassifyDMRecipientSelection(t *testing.T) {
	cases := []struct {
		name       string
		recipients []string
		wantName   string
		wantID     string
	}{
		{"обычный диалог", []string{"Alice", "Bob"}, "Alice", "Bob"},
		{"первый участник удалён", []string{"Deleted User", "Bob"}, "Bob", "Bob"},
	}
	for _, tc := range cases {
		channel := domain.Channel{ID: "1", Type: domain.ChannelKindDM, Recipients: tc.recipients}
		dm, ok := classifyDM(channel, nil)
		if !ok {
			t.Fatalf("%s: ожидали диалог", tc.name)
		}
		if dm.RecipientName != tc.wantName {
			t.Fatalf("%s: ожидали имя %q, получили %q", tc.name, tc.wantName, dm.RecipientName)
		}
		if dm.RecipientID != tc.wantID {
			t.Fatalf("%s: ожидали id %q, получили %q", tc.name, tc.wantID, dm.RecipientID)
		}
	}
}

func TestClassifyDMWrongCount(t *testing.T) {
	for _, recipients := range [][]string{nil, {"Alice"}, {"A", "B", "C"}} {
		channel := domain.Channel{ID: "1", Type: domain.ChannelKindDM, Recipients: recipients}
		if _, ok := classifyDM(channel, nil); ok {
			t.Fatalf("ожидали пропуск канала с %d участниками", len(recipients))
		}
	}
}

func TestFilterDeletedPreservesOrder(t *testing.T) {
	messages := []domain.Message{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"},
	}
	kept := FilterDeleted(messages, map[string]struct{}{"2": {}, "4": {}})
	if len(kept) != 2 || kept[0].ID != "1" || kept[1].ID != "3" {
		t.Fatalf("ожидали [1 3], получили %+v", kept)
	}
}

func TestFilterDeletedEmptySet(t *testing.T) {
	messages := []domain.Message{{ID: "1"}}
	kept := FilterDeleted(messages, nil)
	if len(kept) != 1 {
		t.Fatalf("пустой набор не должен ничего вычёркивать")
	}
}
