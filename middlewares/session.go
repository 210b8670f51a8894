package middlewares

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blightwatch-be/session"
	"blightwatch-be/utils"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "blight_session"
	sessionKey    = "session"
	saveTimeout   = 2 * time.Second
)

// Session loads the caller's citizen session, creating one when none is
// presented or the presented one has expired. Once the handler has run the
// session is saved if it was stored before or the handler changed it, so
// anonymous read-only traffic leaves nothing behind.
func Session(store session.Store, cookies utils.CookieOptions, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, stored := loadSession(c, store, logger)
		before, _ := session.Encode(sess)

		c.Set(sessionKey, sess)
		c.Header(SessionHeader, sess.ID)
		utils.SetCookie(c, cookies, SessionCookie, sess.ID, int(ttl.Seconds()))

		c.Next()

		if !stored {
			after, err := session.Encode(sess)
			if err == nil && bytes.Equal(before, after) {
				return
			}
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), saveTimeout)
		defer cancel()
		if err := store.Save(ctx, sess); err != nil {
			logger.Error("failed to save session", zap.String("session_id", sess.ID), zap.Error(err))
		}
	}
}

// loadSession reports whether the returned session came from the store.
func loadSession(c *gin.Context, store session.Store, logger *zap.Logger) (*session.Session, bool) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id, _ = c.Cookie(SessionCookie)
	}
	if id == "" {
		return session.New(), false
	}

	sess, err := store.Load(c.Request.Context(), id)
	if err == nil {
		return sess, true
	}
	if !errors.Is(err, session.ErrNotFound) {
		logger.Warn("failed to load session", zap.String("session_id", id), zap.Error(err))
	}
	return session.New(), false
}

// CurrentSession returns the session installed by the Session middleware.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
