// Package clipboard copies text in and out of the desktop clipboard. It is
// used for copying the content of a focused text box and for pasting
// text into one.
package clipboard

import (
	"errors"
	"os"
)

var (
	// ErrEmpty is returned by ReadText when the clipboard holds no text.
	ErrEmpty = errors.New("clipboard does not contain text data")

	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// decodeText turns raw selection bytes into a string. Some applications
// terminate STRING replies with a NUL byte.
func decodeText(data []byte) (string, error) {
	if n := len(data); n > 0 && data[n-1] == 0 {
		data = data[:n-1]
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	return string(data), nil
}
