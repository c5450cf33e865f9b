package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should mint a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should not repeat", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, canonical, id.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"LND-1001",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-44665544000g",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the binary form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the wrapped library value", func(t *testing.T) {
		id := kernel.NewUUID()

		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("mutating the copy leaves the identifier intact", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		first, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		second, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("parsed nil UUID fails validation", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
