package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"sportsclub-app/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// fields passed through untouched: they are validated or compared as sent
var rawFields = map[string]bool{
	"email":         true,
	"code":          true,
	"password":      true,
	"refresh_token": true,
}

// SanitizeAndCleanInputMiddleware strips markup from top-level string fields in
// JSON input using bluemonday. Entities the policy escapes are decoded again so
// plain text such as "Al & Bo" is stored as typed.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Abort(c, http.StatusBadRequest, response.CodeInvalidRequest)
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			response.Abort(c, http.StatusBadRequest, response.CodeInvalidRequest)
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok && !rawFields[k] {
				body[k] = stripMarkup(policy, str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// stripMarkup returns s as plain text. Decoding can expose new tags
// ("&lt;b&gt;"), so it repeats until the text is stable.
func stripMarkup(p *bluemonday.Policy, s string) string {
	for i := 0; i < 4; i++ {
		next := html.UnescapeString(p.Sanitize(s))
		if next == s {
			return next
		}
		s = next
	}
	return p.Sanitize(s)
}
