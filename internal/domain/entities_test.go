package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

func TestPrice_Amount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
		ok       bool
	}{
		{
			name:     "two tokens",
			value:    "2000000000000000000",
			expected: 2.0,
			ok:       true,
		},
		{
			name:     "fractional amount",
			value:    "1500000000000000000",
			expected: 1.5,
			ok:       true,
		},
		{
			name:     "sub-unit amount",
			value:    "1000000000000",
			expected: 0.000001,
			ok:       true,
		},
		{
			name:     "zero",
			value:    "0",
			expected: 0,
			ok:       true,
		},
		{
			name: "larger than uint64",
			// 10^21 overflows uint64 but is a valid on-chain balance
			value:    "1000000000000000000000",
			expected: 1000.0,
			ok:       true,
		},
		{
			name:  "not a number",
			value: "lots",
			ok:    false,
		},
		{
			name:  "empty",
			value: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := domain.Price{Value: tt.value}.Amount()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, amount, 1e-12)
			} else {
				assert.Zero(t, amount)
			}
		})
	}
}

func TestCanonicalAmount(t *testing.T) {
	// The first price is canonical; later components are ignored
	amount, ok := domain.CanonicalAmount([]domain.Price{
		{Component: "testing_price", Value: "3000000000000000000"},
		{Component: "qc_price", Value: "1000000000000000000"},
	})
	assert.True(t, ok)
	assert.InDelta(t, 3.0, amount, 1e-12)

	_, ok = domain.CanonicalAmount(nil)
	assert.False(t, ok)

	_, ok = domain.CanonicalAmount([]domain.Price{{Value: "oops"}})
	assert.False(t, ok)
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "DAI", domain.NormalizeCurrency("dai"))
	assert.Equal(t, "USDT", domain.NormalizeCurrency("Usdt"))
	assert.Equal(t, "GLNK", domain.NormalizeCurrency("GLNK"))
	assert.Equal(t, "", domain.NormalizeCurrency(""))
}

func TestIsValidEventType(t *testing.T) {
	assert.True(t, domain.IsValidEventType(domain.EventTypeOrderCreated))
	assert.True(t, domain.IsValidEventType(domain.EventTypeLabUnstaked))
	assert.True(t, domain.IsValidEventType(domain.EventTypeDNASampleRejected))
	assert.False(t, domain.IsValidEventType(domain.EventType("order_teleported")))
	assert.False(t, domain.IsValidEventType(domain.EventType("")))
}

func TestChainEvent_Valid(t *testing.T) {
	event := &domain.ChainEvent{
		EventType: domain.EventTypeOrderCreated,
		Payload:   []byte(`{"id":"0x1"}`),
	}
	assert.True(t, event.Valid())

	assert.False(t, (&domain.ChainEvent{EventType: domain.EventTypeOrderCreated}).Valid())
	assert.False(t, (&domain.ChainEvent{EventType: "nope", Payload: []byte(`{}`)}).Valid())
}

func TestMalformedEventError(t *testing.T) {
	err := domain.NewMalformedEventError(domain.EventTypeOrderPaid, "missing order id", nil)
	assert.Contains(t, err.Error(), "order_paid")
	assert.Contains(t, err.Error(), "missing order id")
	assert.True(t, domain.IsMalformedEvent(err))
	assert.False(t, domain.IsMalformedEvent(assert.AnError))

	wrapped := domain.NewMalformedEventError(domain.EventTypeOrderPaid, "unparseable payload", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
