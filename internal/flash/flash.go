// Package flash carries one transient status message across a redirect. A
// message set during one response is consumed by the next page render, at
// most once.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
)

// Message is a transient status notification. Kind doubles as the CSS class
// of the rendered flash element.
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Set queues msg for the next rendered page.
func Set(w http.ResponseWriter, kind, text string) {
	payload, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the queued message, if any, and expires its cookie so a reload
// cannot surface the same message twice.
func Pop(w http.ResponseWriter, r *http.Request) (Message, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return Message{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Message{}, false
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, false
	}
	return msg, true
}
