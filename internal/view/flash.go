package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages displayed above the page content.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to display.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) error {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return fmt.Errorf("load flash session: %w", err)
	}
	sess.AddFlash(message, key)
	return sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) error {
	return setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) error {
	return setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
// A missing or unreadable session yields empty data.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() retrieves and then clears the flashes from the session.
	data.Success = toStrings(sess.Flashes(flashKeySuccess))
	data.Error = toStrings(sess.Flashes(flashKeyError))

	// Save to persist the clearing of flashes.
	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
