package hmetis_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/hgpart/hmetis"
	"github.com/stretchr/testify/require"
)

func TestWritePartitionAndTiming(t *testing.T) {
	dir := t.TempDir()
	partPath := filepath.Join(dir, "out.part")
	timePath := filepath.Join(dir, "out.time")

	require.NoError(t, hmetis.WritePartition(partPath, []uint8{0, 1, 0, 2}))
	data, err := os.ReadFile(partPath)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n0\n2\n", string(data))

	require.NoError(t, hmetis.WriteTiming(timePath, 1500*time.Millisecond))
	data, err = os.ReadFile(timePath)
	require.NoError(t, err)
	require.Equal(t, "1.500000\n", string(data))
}
