package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"honnef.co/go/animate/ease"
)

type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	errWrite := errors.New("write failed")
	errClose := errors.New("close failed")
	tests := []struct {
		name     string
		writeErr error
		closeErr error
		want     error
	}{
		{"ok", nil, nil, nil},
		{"close fails", nil, errClose, errClose},
		{"write fails", errWrite, nil, errWrite},
		{"both fail", errWrite, errClose, errWrite},
	}
	for _, tt := range tests {
		wc := &closeRecorder{closeErr: tt.closeErr}
		err := writeAndClose(wc, func(w io.Writer) error {
			if err := plot(w, ease.Linear, "csv", false); err != nil {
				return err
			}
			return tt.writeErr
		})
		if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.want)
		}
		if !wc.closed {
			t.Errorf("%s: writer wasn't closed", tt.name)
		}
		if wc.Len() == 0 {
			t.Errorf("%s: nothing was written", tt.name)
		}
	}
}
