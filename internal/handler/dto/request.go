package dto

import (
	"fmt"
	"net/http"
)

// maxFormBytes bounds the size of the hero form body.
const maxFormBytes = 4 << 10

// EmailForm is the body of the hero form endpoints.
type EmailForm struct {
	Email string
}

// ParseEmailForm reads the url-encoded email field. The value is kept verbatim.
func ParseEmailForm(w http.ResponseWriter, r *http.Request) (EmailForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return EmailForm{}, fmt.Errorf("parse form: %w", err)
	}

	return EmailForm{Email: r.PostForm.Get("email")}, nil
}
