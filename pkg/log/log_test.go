package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	SetupTestLogger()

	ctx, _ := WithCorrelationID(context.Background())
	assert.NotNil(t, ForContext(ctx))
}
