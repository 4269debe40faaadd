package balancesheet

import (
	"strings"
	"testing"
)

func TestDecodeAnswers(t *testing.T) {
	input := `{"category":"cash","value":1000}
{"category":"goodwill","value":"250.50"}

{"category":"loans","value":500,"shortTerm":true}
{"category":"leases","value":120}
`
	l, err := DecodeAnswers(strings.NewReader(input), "INR")
	if err != nil {
		t.Fatalf("DecodeAnswers() error = %v", err)
	}
	a := NewAggregator(l)

	if got := a.TotalAssets(Current); !got.Equal(INR(1000)) {
		t.Errorf("TotalAssets(Current) = %s, want 1000.00", got.Fixed())
	}
	if got := a.TotalAssets(NonCurrent); !got.Equal(INR(250.5)) {
		t.Errorf("TotalAssets(NonCurrent) = %s, want 250.50", got.Fixed())
	}
	if got := a.TotalLiabilities(ShortTerm); !got.Equal(INR(500)) {
		t.Errorf("TotalLiabilities(ShortTerm) = %s, want 500.00", got.Fixed())
	}
	if got := a.TotalLiabilities(LongTerm); !got.Equal(INR(120)) {
		t.Errorf("TotalLiabilities(LongTerm) = %s, want 120.00", got.Fixed())
	}
	if got := l.Assets()[1].Name(); got != "Goodwill" {
		t.Errorf("second asset = %q, want Goodwill", got)
	}
}

func TestDecodeAnswers_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown category", `{"category":"yacht","value":1}`, `unknown category "yacht"`},
		{"not a number", `{"category":"cash","value":"a lot"}`, "line 1"},
		{"not json", `cash=1`, "cannot parse answer"},
		{"duplicate category", "{\"category\":\"inventories\",\"value\":5}\n{\"category\":\"cash\",\"value\":100}\n{\"category\":\"cash\",\"value\":100}", `line 3: duplicate category "cash"`},
		{"duplicate liability", "{\"category\":\"loans\",\"value\":5,\"shortTerm\":true}\n{\"category\":\"loans\",\"value\":5}", `duplicate category "loans"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAnswers(strings.NewReader(tc.input), "INR")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeAnswers() error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestImportJSON(t *testing.T) {
	doc := `{
  "company": "ACME",
  "balance": {
    "cash": 1000.10,
    "inventory": "300",
    "debts": [{"name": "bank", "amount": 500}]
  }
}`
	mappings, err := DecodeMappings(strings.NewReader(`{"category":"cash","path":"$.balance.cash"}
{"category":"inventories","path":"$.balance.inventory"}
{"category":"loans","path":"$.balance.debts[0].amount","shortTerm":true}
`))
	if err != nil {
		t.Fatalf("DecodeMappings() error = %v", err)
	}

	l, err := ImportJSON(strings.NewReader(doc), mappings, "INR")
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	a := NewAggregator(l)
	if got := a.TotalAssets(Current); !got.Equal(INR(1300.1)) {
		t.Errorf("TotalAssets(Current) = %s, want 1300.10", got.Fixed())
	}
	if got := a.TotalLiabilities(ShortTerm); !got.Equal(INR(500)) {
		t.Errorf("TotalLiabilities(ShortTerm) = %s, want 500.00", got.Fixed())
	}

	_, err = ImportJSON(strings.NewReader(doc), []Mapping{{Category: "cash", Path: "$.company"}}, "INR")
	if err == nil {
		t.Error("ImportJSON() with a non numeric value succeeded, want error")
	}

	twice := []Mapping{
		{Category: "cash", Path: "$.balance.cash"},
		{Category: "cash", Path: "$.balance.inventory"},
	}
	_, err = ImportJSON(strings.NewReader(doc), twice, "INR")
	if err == nil || !strings.Contains(err.Error(), `duplicate category "cash"`) {
		t.Errorf("ImportJSON() with a category mapped twice: error = %v, want duplicate category", err)
	}
}
