package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"auth-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// redactedHeaders never leave the process in bug reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		if err := d.ReportBug(context.Background(), message); err != nil {
			// The request logger is gone by now.
			log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
		}
	}()
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var bodyBytes []byte
	if c.Request.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	var sb strings.Builder
	sb.WriteString("================ AUTH SERVICE ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString("----------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers :\n")
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				sb.WriteString(fmt.Sprintf("    %s: [redacted]\n", key))
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(values, ", ")))
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	if params := c.Request.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	// Login bodies carry passwords; only their shape is reported.
	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var fields map[string]any
		if err := json.Unmarshal(bodyBytes, &fields); err == nil {
			for k := range fields {
				sb.WriteString(fmt.Sprintf("    %s: [redacted]\n", k))
			}
		} else {
			sb.WriteString(fmt.Sprintf("    <%d bytes>\n", len(bodyBytes)))
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}
