package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cameraKind struct{}
type meshKind struct{}

func TestProviderHandsOutRegisteredAllocators(t *testing.T) {
	provider := NewProvider()
	Register(provider, NewIndexAllocator[cameraKind](2))
	Register(provider, NewIndexAllocator[meshKind](2))

	ref := RefOf[cameraKind](provider)
	allocator, ok := ref.Upgrade()
	require.True(t, ok)

	allocation, ok := allocator.Allocate()
	require.True(t, ok)
	assert.Equal(t, uint32(0), allocation.Index())
}

func TestProviderPanicsOnDuplicateRegistration(t *testing.T) {
	provider := NewProvider()
	Register(provider, NewIndexAllocator[cameraKind](2))

	assert.Panics(t, func() {
		Register(provider, NewIndexAllocator[cameraKind](4))
	})
}

func TestProviderPanicsOnUnknownKind(t *testing.T) {
	provider := NewProvider()

	assert.Panics(t, func() {
		RefOf[cameraKind](provider)
	})
}

func TestRevokeAllCutsOffEveryReference(t *testing.T) {
	provider := NewProvider()
	Register(provider, NewIndexAllocator[cameraKind](2))
	Register(provider, NewIndexAllocator[meshKind](2))

	cameraRef := RefOf[cameraKind](provider)
	meshRef := RefOf[meshKind](provider)
	// A copy handed out before the revocation shares the revocation state.
	cameraRefCopy := cameraRef

	provider.RevokeAll()

	_, ok := cameraRef.Upgrade()
	assert.False(t, ok)
	_, ok = cameraRefCopy.Upgrade()
	assert.False(t, ok)
	_, ok = meshRef.Upgrade()
	assert.False(t, ok)
}

func TestZeroRefDoesNotUpgrade(t *testing.T) {
	var ref Ref[cameraKind]

	_, ok := ref.Upgrade()
	assert.False(t, ok)
	ref.Revoke()
}

func TestRefKeepsAllocatedSlotsValidAfterRevoke(t *testing.T) {
	allocator := NewIndexAllocator[cameraKind](2)
	ref := NewRef(Allocator[cameraKind](allocator))

	upgraded, ok := ref.Upgrade()
	require.True(t, ok)
	allocation, ok := upgraded.Allocate()
	require.True(t, ok)

	ref.Revoke()

	// The slot stays issued; only new upgrades are cut off.
	assert.Equal(t, 1, allocator.Len())
	allocator.Free(allocation)
	assert.Equal(t, 0, allocator.Len())
}
