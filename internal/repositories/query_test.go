package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogQuery_OmitsArgumentValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	logQuery("SELECT *\n\tFROM profiles WHERE phone = $1", []any{"+1 555 0199", "penicillin"}, 1, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()

	assert.Equal(t, "sql", entries[0].Message)
	assert.Equal(t, "SELECT * FROM profiles WHERE phone = $1", fields["query"])
	assert.EqualValues(t, 2, fields["args"])
	assert.NotContains(t, fmt.Sprint(fields), "555 0199")
	assert.Equal(t, "boom", fields["error"])
}

