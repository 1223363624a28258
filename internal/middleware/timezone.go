package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

// Timezone stores the caller's location, taken from the tz query parameter
// or the X-Timezone header. Unknown names fall back to the server zone.
func Timezone() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("tz")
		if name == "" {
			name = c.GetHeader(constants.TimezoneHeader)
		}
		c.Set(constants.ContextKeyLocation, utils.ResolveLocation(name))
		c.Next()
	}
}

// GetLocation returns the location stored by Timezone, or the server zone
func GetLocation(c *gin.Context) *time.Location {
	if v, ok := c.Get(constants.ContextKeyLocation); ok {
		if loc, ok := v.(*time.Location); ok {
			return loc
		}
	}
	return time.Local
}
