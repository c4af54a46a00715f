// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	config := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   1,
			MaxFiles:  1,
			MaxAge:    1,
			Directory: dir,
		},
		DisableWriterDisplaying: true,
		LogLevel:                logging.Info,
		DisplayLevel:            logging.Off,
		LogFormat:               logging.Plain,
	}
	factory := NewFactory(config)

	log, err := factory.Make("runtime")
	require.NoError(err)
	log.Info("contract log")
	log.Debug("below level")

	_, err = factory.Make("runtime")
	require.ErrorIs(err, ErrDuplicateLogger)

	factory.Close()

	b, err := os.ReadFile(filepath.Join(dir, "runtime.log"))
	require.NoError(err)
	require.Contains(string(b), "contract log")
	require.NotContains(string(b), "below level")
}

func TestFactoryReusableAfterClose(t *testing.T) {
	require := require.New(t)

	factory := NewFactory(logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   1,
			MaxFiles:  1,
			MaxAge:    1,
			Directory: t.TempDir(),
		},
		DisableWriterDisplaying: true,
		LogLevel:                logging.Info,
		DisplayLevel:            logging.Off,
		LogFormat:               logging.Plain,
	})

	_, err := factory.Make("runtime")
	require.NoError(err)
	factory.Close()

	// closed loggers no longer hold their names
	log, err := factory.Make("runtime")
	require.NoError(err)
	log.Info("reopened")
	factory.Close()
}
