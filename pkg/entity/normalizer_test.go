package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ticker uppercase", "BTC", "Bitcoin"},
		{"ticker lowercase", "btc", "Bitcoin"},
		{"dollar prefix", "$BTC", "Bitcoin"},
		{"full name lowercase", "bitcoin", "Bitcoin"},
		{"full name uppercase", "BITCOIN", "Bitcoin"},
		{"canonical passes through", "Bitcoin", "Bitcoin"},
		{"ethereum ticker", "ETH", "Ethereum"},
		{"ether variant", "ether", "Ethereum"},
		{"company", "coinbase", "Coinbase"},
		{"regulator", "sec", "SEC"},
		{"unknown preserved", "Obscure Chain", "Obscure Chain"},
		{"unknown trimmed", "  Obscure Chain  ", "Obscure Chain"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"$BTC", "btc", "Bitcoin", "BITCOIN", "eth", "Unknown Entity", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"$BTC", "btc", "Bitcoin", "BITCOIN", "ETH"})
	assert.Equal(t, []string{"Bitcoin", "Ethereum"}, got)

	got = NormalizeAll([]string{"", "  ", "sol"})
	assert.Equal(t, []string{"Solana"}, got)
}
