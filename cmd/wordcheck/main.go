// Copyright 2025 The WordCheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordCheck spell-checking server and CLI.

WordCheck loads a vocabulary of words and definitions from a JSON object,
checks text against it and suggests the closest dictionary words for
anything it does not know, ranked by Levenshtein distance.

# Usage

Start the msgpack IPC server with a vocabulary file:

	wordcheck --dict /path/to/vocab.json

Run the interactive CLI instead, reloading the vocabulary when it changes:

	wordcheck --cli --watch --dict vocab.json

The vocabulary is a single JSON object:

	{"cat": "a small domesticated feline", "dog": "a domesticated canine"}

If it cannot be found or parsed, WordCheck logs a warning and runs with an
empty vocabulary so every word is reported as misspelled until a reload
succeeds.

# Configuration

Runtime configuration is read from a TOML file, created with defaults under
the user config dir when missing. See package config for the keys.

# Flags

	--dict, -f FILE     vocabulary file (default from config)
	--config FILE       config file
	--cli, -c           interactive mode instead of the IPC server
	--limit, -l N       suggestions per word
	--watch, -w         reload the vocabulary when the file changes
	--debug, -d         debug logging
	--version, -V       print version information
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
