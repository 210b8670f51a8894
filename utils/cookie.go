package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieOptions carries the deployment settings shared by every cookie we set.
type CookieOptions struct {
	Domain     string
	Production bool
}

// SetCookie writes an HttpOnly cookie. A negative maxAge clears it.
func SetCookie(c *gin.Context, opts CookieOptions, name, value string, maxAge int) {
	domain := opts.Domain
	sameSite := http.SameSiteLaxMode
	// Production leaves the domain unset and allows cross-origin cookies.
	if opts.Production {
		domain = ""
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   domain,
		Secure:   opts.Production,
		HttpOnly: true,
		SameSite: sameSite,
	})
}
