package model

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `1000.5`, 1000.5},
		{"numeric string", `"250"`, 250},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if float64(a) != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, float64(a))
			}
		})
	}
}

func TestAmountMarshalAsNumber(t *testing.T) {
	data, err := json.Marshal(Amount(99.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "99.5" {
		t.Errorf("Expected 99.5, got %s", data)
	}
}

func TestContractRoundTripNormalizesAmounts(t *testing.T) {
	// A document written by an older version with string amounts
	raw := `{"id":"c1","vendorId":"v1","description":"Roof","contractAmount":"1000","payments":[{"id":"p1","date":"2024-01-01","amount":"400"}]}`

	var c Contract
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if float64(c.ContractAmount) != 1000 || float64(c.Payments[0].Amount) != 400 {
		t.Error("Expected string amounts parsed")
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var back Contract
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if float64(back.ContractAmount) != 1000 {
		t.Error("Expected amount re-encoded as number")
	}
}
