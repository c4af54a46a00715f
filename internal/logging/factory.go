// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrDuplicateLogger = errors.New("duplicate logger")

// Factory builds loggers that write to the console and to a rotated file
// per logger under the configured directory. Unlike avalanchego's factory it
// can fully mute the console, which the CLI needs when it prints results.
type Factory struct {
	config logging.Config

	lock    sync.Mutex
	loggers map[string]logging.Logger
}

func NewFactory(config logging.Config) *Factory {
	return &Factory{
		config:  config,
		loggers: make(map[string]logging.Logger),
	}
}

// Make returns a new logger writing to <directory>/<name>.log.
func (f *Factory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLogger, name)
	}

	var console io.WriteCloser = os.Stderr
	if f.config.DisableWriterDisplaying {
		console = discard{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(f.config.DisplayLevel, console, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying

	rw := &lumberjack.Logger{
		Filename:   filepath.Join(f.config.Directory, name+".log"),
		MaxSize:    f.config.MaxSize,  // megabytes
		MaxAge:     f.config.MaxAge,   // days
		MaxBackups: f.config.MaxFiles, // files
		Compress:   f.config.Compress,
	}
	fileCore := logging.NewWrappedCore(f.config.LogLevel, rw, f.config.LogFormat.FileEncoder())

	l := logging.NewLogger(f.config.LogFormat.WrapPrefix(f.config.MsgPrefix), consoleCore, fileCore)
	f.loggers[name] = l
	return l, nil
}

// Close stops every logger made by the factory.
func (f *Factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	clear(f.loggers)
}

type discard struct {
	io.Writer
}

func (discard) Close() error {
	return nil
}
