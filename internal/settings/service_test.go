package settings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatbook-dev/zakatbook/internal/config"
)

func newTestService() *Service {
	return NewService(config.Default("Test"))
}

func TestPresets(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, []string{"Zakat", "Sadaqah", "Fitrana", "Qurbani"}, svc.Types())
	assert.True(t, svc.HasType("Zakat"))
	assert.True(t, svc.HasService("Remitly"))
	assert.True(t, svc.HasRecipient("Local Mosque"))
	assert.False(t, svc.HasType("Interest"))
	assert.False(t, svc.HasRecipient(""))
}

func TestBlankSlotsIgnored(t *testing.T) {
	cfg := config.Default("Test")
	cfg.Vocab.Services = []string{"Wise", "", "Zelle", ""}
	svc := NewService(cfg)

	assert.Equal(t, []string{"Wise", "Zelle"}, svc.Services())
	assert.False(t, svc.HasService(""))
}

func TestAdd(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.AddRecipient("Water Well Project"))
	assert.True(t, svc.HasRecipient("Water Well Project"))

	err := svc.AddRecipient("Water Well Project")
	assert.Error(t, err, "duplicates rejected")

	err = svc.AddType("   ")
	assert.Error(t, err, "blank rejected")
}

func TestSlotLimit(t *testing.T) {
	svc := newTestService()

	for i := len(svc.Types()); i < SlotLimit; i++ {
		require.NoError(t, svc.AddType(fmt.Sprintf("Type %d", i)))
	}
	err := svc.AddType("One Too Many")
	assert.Error(t, err)
	assert.Len(t, svc.Types(), SlotLimit)
}

func TestClearedValueLeavesEntriesAlone(t *testing.T) {
	// Clearing a slot only affects membership checks; it never rewrites
	// ledger rows that reference the old value.
	cfg := config.Default("Test")
	svc := NewService(cfg)
	require.True(t, svc.HasRecipient("LaunchGood"))

	for i, r := range cfg.Vocab.Recipients {
		if r == "LaunchGood" {
			cfg.Vocab.Recipients[i] = ""
		}
	}
	assert.False(t, svc.HasRecipient("LaunchGood"))
}
