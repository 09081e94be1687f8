package hasher

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, h.Verify("pw1", hash))
	assert.False(t, h.Verify("pw2", hash))
}

func TestHasher_Salted(t *testing.T) {
	h := New(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same", first))
	assert.True(t, h.Verify("same", second))
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	h := New(bcrypt.MinCost)

	for _, stored := range []string{"", "hashedpassword", "$2a$04$short", "pw"} {
		t.Run(stored, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("pw", stored))
			})
		})
	}
}

func TestNew_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, New(bcrypt.MinCost).cost)
}

func TestHasher_Concurrent(t *testing.T) {
	h := New(bcrypt.MinCost)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(pw string) {
			defer wg.Done()
			hash, err := h.Hash(pw)
			assert.NoError(t, err)
			assert.True(t, h.Verify(pw, hash))
		}(strings.Repeat("x", i+1))
	}
	wg.Wait()
}
