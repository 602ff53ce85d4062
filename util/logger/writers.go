// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"io"
	"os"
)

// ansi color sequences per level, used by the console writer in color mode.
var levelColors = [...]string{
	DEBUG: "\x1B[37m",
	INFO:  "\x1B[32m",
	WARN:  "\x1B[33;1m",
	ERROR: "\x1B[31;1m",
	FATAL: "\x1B[35;1m",
}

const colorReset = "\x1B[0m"

// Console writes log lines to standard output.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole returns a console writer. With color set, lines are wrapped in
// the ansi sequence matching their level.
func NewConsole(color bool) *Console {
	return &Console{out: os.Stdout, color: color}
}

func (c *Console) Write(level int, line string) {
	if c.color {
		io.WriteString(c.out, levelColors[level]+line+colorReset)
		return
	}
	io.WriteString(c.out, line)
}

func (c *Console) Close() {}

// File appends log lines to a file.
type File struct {
	f *os.File
}

// NewFile opens (creating if needed) filename for appending log lines.
func NewFile(filename string) (*File, error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o666)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (w *File) Write(level int, line string) {
	io.WriteString(w.f, line)
}

func (w *File) Close() {
	w.f.Close()
}
