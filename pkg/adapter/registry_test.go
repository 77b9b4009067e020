package adapter

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
)

func TestUnknownAdapterError_Error(t *testing.T) {
	err := &UnknownAdapterError{
		Type:      "fake_db",
		Available: []string{"duckdb", "postgres"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "fake_db", "error should mention the unknown type")
	assert.Contains(t, msg, "duckdb", "error should list available adapters")
	assert.Contains(t, msg, "termsql.yaml", "error should mention config file")
}

func TestRegistry(t *testing.T) {
	Register("test_adapter_internal", func(_ *slog.Logger) Adapter { return &fakeAdapter{} })

	assert.True(t, IsRegistered("test_adapter_internal"))
	assert.False(t, IsRegistered("unknown_db"))
	assert.Contains(t, ListAdapters(), "test_adapter_internal")

	factory, ok := Get("test_adapter_internal")
	require.True(t, ok)
	require.NotNil(t, factory)

	adp, err := NewAdapter(core.AdapterConfig{Type: "test_adapter_internal"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &fakeAdapter{}, adp)
}

func TestNewAdapter_Errors(t *testing.T) {
	_, err := NewAdapter(core.AdapterConfig{}, nil)
	require.Error(t, err)
	assert.Equal(t, "adapter type not specified", err.Error())

	_, err = NewAdapter(core.AdapterConfig{Type: "unknown_adapter"}, nil)
	var unknownErr *UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "unknown_adapter", unknownErr.Type)
}
