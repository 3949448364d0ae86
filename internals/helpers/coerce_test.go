package helper

import (
	"encoding/json"
	"testing"
)

func TestFlexIntDecodeForms(t *testing.T) {
	type payload struct {
		ID FlexInt `json:"id"`
	}

	tests := []struct {
		name    string
		in      string
		present bool
		valid   bool
		value   int64
		wantErr bool
	}{
		{name: "number", in: `{"id": 42}`, present: true, valid: true, value: 42},
		{name: "string", in: `{"id": "42"}`, present: true, valid: true, value: 42},
		{name: "null", in: `{"id": null}`, present: true, valid: false},
		{name: "empty string", in: `{"id": ""}`, present: true, valid: false},
		{name: "absent", in: `{}`, present: false, valid: false},
		{name: "garbage", in: `{"id": "abc"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tt.in), &p)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.ID.Present != tt.present || p.ID.Valid != tt.valid {
				t.Fatalf("got present=%v valid=%v, want present=%v valid=%v",
					p.ID.Present, p.ID.Valid, tt.present, tt.valid)
			}
			if tt.valid && p.ID.Value != tt.value {
				t.Fatalf("value = %d, want %d", p.ID.Value, tt.value)
			}
		})
	}
}

func TestFlexFloatDecodeForms(t *testing.T) {
	type payload struct {
		Score FlexFloat `json:"score"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"score": "8.5"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Score.Valid || p.Score.Value != 8.5 {
		t.Fatalf("got %+v, want valid 8.5", p.Score)
	}

	p = payload{}
	if err := json.Unmarshal([]byte(`{"score": 9}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Score.Valid || p.Score.Value != 9 {
		t.Fatalf("got %+v, want valid 9", p.Score)
	}

	if err := json.Unmarshal([]byte(`{"score": "high"}`), &p); err == nil {
		t.Fatal("expected decode error for non-numeric string")
	}
}
