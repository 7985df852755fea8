package images

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasysyndicate/league-data/internal/config"
)

func TestNewDisabledWhenUnconfigured(t *testing.T) {
	svc, err := New(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestObjectKey(t *testing.T) {
	withDir := &Service{dir: "syndicate"}
	assert.Equal(t, "syndicate/FS.png", withDir.ObjectKey("FS.png"))

	noDir := &Service{}
	assert.Equal(t, "FS.png", noDir.ObjectKey("FS.png"))
}

func TestAwardImage(t *testing.T) {
	name, ok := AwardImage(1)
	require.True(t, ok)
	assert.Equal(t, "champion.png", name)

	_, ok = AwardImage(999)
	assert.False(t, ok)
}
