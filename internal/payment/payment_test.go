package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods_SettleAlwaysSucceeds(t *testing.T) {
	methods := []Method{Card{}, CashOnDelivery{}, Wallet{}}

	for _, m := range methods {
		t.Run(m.Name(), func(t *testing.T) {
			confirmation, err := m.Settle(49.9)
			require.NoError(t, err)
			assert.NotEmpty(t, confirmation)
			assert.Contains(t, confirmation, "49.90")
		})
	}
}

func TestFromChoice(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{choice: "1", want: "card"},
		{choice: "2", want: "cash on delivery"},
		{choice: "3", want: "wallet"},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			m, ok := FromChoice(tt.choice)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.Name())
		})
	}

	m, ok := FromChoice("4")
	assert.False(t, ok)
	assert.Nil(t, m)
}
