package middleware

import (
	"bytes"
	"io"
	"log"

	"github.com/gin-gonic/gin"
)

// Bodies longer than this are cut in the log line. Uploaded PDFs would
// otherwise dump megabytes of binary into the log.
const maxLoggedBody = 4096

// RequestLogger logs every request's path and body before it is handled. The
// body is restored so downstream handlers can read it again.
func RequestLogger(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.Next()
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	logged := body
	if len(logged) > maxLoggedBody {
		logged = logged[:maxLoggedBody]
	}
	log.Printf("Receiving request at %s with body: %s", c.Request.URL.Path, logged)

	c.Next()
}
