package fs_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/proj/train.py", []byte("print('hi')\n"), 0o644))
	h := fs.NewHasher(mem)

	sum, err := h.ComputeFileHash("/proj/train.py")

	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("print('hi')\n"), sum)

	_, err = h.ComputeFileHash("/proj/missing.py")
	require.ErrorContains(t, err, "failed to open file")
}

func TestDigestFormat(t *testing.T) {
	s := fs.FormatDigest(0xabc)
	assert.Equal(t, "0000000000000abc", s)

	sum, err := fs.ParseDigest(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xabc), sum)

	_, err = fs.ParseDigest("zz")
	require.Error(t, err)
}
