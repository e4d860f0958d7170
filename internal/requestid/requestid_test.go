package requestid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGeneratesUUID(t *testing.T) {
	ctx, id := Ensure(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, From(ctx))
}

func TestEnsureKeepsExisting(t *testing.T) {
	ctx := With(context.Background(), "abc")

	got, id := Ensure(ctx)
	assert.Equal(t, "abc", id)
	assert.Equal(t, ctx, got)
}

func TestFromEmpty(t *testing.T) {
	assert.Equal(t, "", From(context.Background()))
}
