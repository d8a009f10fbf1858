package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"sambatin/internal/services"
)

const PersonaKey = "persona"

// 会话里存的键
const (
	SessionPersonaName  = "persona_name"
	SessionPersonaEmoji = "persona_emoji"
	SessionWelcomeSeen  = "welcome_seen"
)

// LoadPersona retrieves the session persona, if one was assigned, and sets
// it on the request context for handlers to default to.
func LoadPersona() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if name, ok := session.Get(SessionPersonaName).(string); ok && name != "" {
			emoji, _ := session.Get(SessionPersonaEmoji).(string)
			c.Set(PersonaKey, &services.Persona{Name: name, Emoji: emoji})
		}
		c.Next()
	}
}

// SessionPersona returns the persona loaded for this request, or nil.
func SessionPersona(c *gin.Context) *services.Persona {
	if v, exists := c.Get(PersonaKey); exists {
		if p, ok := v.(*services.Persona); ok {
			return p
		}
	}
	return nil
}

// StorePersona writes a persona into the session.
func StorePersona(c *gin.Context, p services.Persona) error {
	session := sessions.Default(c)
	session.Set(SessionPersonaName, p.Name)
	session.Set(SessionPersonaEmoji, p.Emoji)
	return session.Save()
}
