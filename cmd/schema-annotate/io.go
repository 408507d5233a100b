package main

import (
	"io"
	"os"

	annotator "github.com/signadot/schema-annotator"
)

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		d   []byte
		err error
	)
	if name == "-" || name == "" {
		d, err = io.ReadAll(stdin)
	} else {
		d, err = os.ReadFile(name)
	}
	if err != nil {
		return "", (&annotator.Error{Kind: annotator.IOError, Err: err}).WithContext("reading %s", displayName(name))
	}
	return string(d), nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}
