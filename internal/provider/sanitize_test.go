package provider

import (
	"reflect"
	"sort"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"name":"Maria Silva"}`,
			want: `{"name":"Maria Silva"}`,
		},
		{
			name: "json code fence",
			in:   "```json\n{\"name\":\"Maria Silva\"}\n```",
			want: `{"name":"Maria Silva"}`,
		},
		{
			name: "plain code fence",
			in:   "```\n{\"cpf\":\"12345678901\"}\n```",
			want: `{"cpf":"12345678901"}`,
		},
		{
			name: "leading prose",
			in:   `Here is the extracted data: {"name":"Maria Silva","city":"Florianópolis"}`,
			want: `{"name":"Maria Silva","city":"Florianópolis"}`,
		},
		{
			name: "nested object",
			in:   `sure! {"name":"Maria","address":{"city":"Florianópolis"}} anything else?`,
			want: `{"name":"Maria","address":{"city":"Florianópolis"}}`,
		},
		{
			name:    "no object at all",
			in:      "I could not read the document.",
			wantErr: true,
		},
		{
			name:    "empty content",
			in:      "",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ExtractJSONObject(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSONObject(%q): %v", tc.in, err)
			}
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSanitizePayload(t *testing.T) {
	raw := []byte(`{
		"name": "  Maria Silva  ",
		"birth_date": null,
		"cpf": "",
		"age": 34,
		"quota_value": 10.5,
		"active": true,
		"cnae_list": ["4711-3", "4712-1"],
		"single_item": ["only"],
		"junk": {"nested": "object"}
	}`)

	got, dropped, err := SanitizePayload(raw)
	if err != nil {
		t.Fatalf("SanitizePayload: %v", err)
	}

	want := map[string]any{
		"name":        "Maria Silva",
		"age":         "34",
		"quota_value": "10.50",
		"active":      "true",
		"cnae_list":   "4711-3, 4712-1",
		"single_item": "only",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("payload = %v, want %v", got, want)
	}

	sort.Strings(dropped)
	wantDropped := []string{"birth_date", "cpf", "junk"}
	if !reflect.DeepEqual(dropped, wantDropped) {
		t.Errorf("dropped = %v, want %v", dropped, wantDropped)
	}
}

func TestSanitizePayloadRejectsNonObject(t *testing.T) {
	if _, _, err := SanitizePayload([]byte(`["a","b"]`)); err == nil {
		t.Error("array payload accepted")
	}
	if _, _, err := SanitizePayload([]byte(`not json`)); err == nil {
		t.Error("garbage payload accepted")
	}
}

func TestRawResultFieldCount(t *testing.T) {
	r := RawResult{Payload: map[string]any{
		"name":  "Maria Silva",
		"cpf":   "",
		"extra": nil,
		"age":   "34",
	}}
	if got := r.FieldCount(); got != 2 {
		t.Errorf("FieldCount = %d, want 2", got)
	}
	if got := (RawResult{}).FieldCount(); got != 0 {
		t.Errorf("empty FieldCount = %d, want 0", got)
	}
}
