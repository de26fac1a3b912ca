package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)

	require.Equal(3, custom.Log.Level)
	require.Equal("(?i)calc|board", custom.Log.Filter)
	require.Equal(100, custom.Log.Limiter)
	require.Equal(int32(4), custom.Rational.Precision)
	require.Equal(5, custom.Board.Width)

	_, err = Initialize("./missing.toml")
	require.NotNil(err)
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)

	custom := Default()
	require.Equal(DefaultLogLevel, custom.Log.Level)
	require.Equal(int32(DefaultPrecision), custom.Rational.Precision)
	require.Equal(DefaultWidth, custom.Board.Width)

	file := filepath.Join(t.TempDir(), "partial.toml")
	err := os.WriteFile(file, []byte("[board]\nwidth = 3\n"), 0644)
	require.Nil(err)
	custom, err = Initialize(file)
	require.Nil(err)
	require.Equal(3, custom.Board.Width)
	require.Equal(DefaultLogLevel, custom.Log.Level)
	require.Equal(int32(DefaultPrecision), custom.Rational.Precision)

	err = os.WriteFile(file, []byte("[board\nwidth = 3\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)
}
