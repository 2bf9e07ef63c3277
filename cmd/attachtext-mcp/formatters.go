package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/attachtext/internal/models"
)

// formatMetadata formats PDF metadata as markdown
func formatMetadata(headerID, attachmentID string, meta *models.PDFMetadata) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Attachment %s/%s\n\n", headerID, attachmentID))
	sb.WriteString(fmt.Sprintf("**Pages:** %d\n", meta.PageCount))
	sb.WriteString(fmt.Sprintf("**Size:** %d bytes\n", meta.FileSize))
	sb.WriteString(fmt.Sprintf("**Encrypted:** %t\n", meta.IsEncrypted))

	fields := []struct {
		label string
		value string
	}{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Subject", meta.Subject},
		{"Creator", meta.Creator},
		{"Producer", meta.Producer},
	}
	for _, f := range fields {
		if f.value != "" {
			sb.WriteString(fmt.Sprintf("**%s:** %s\n", f.label, f.value))
		}
	}

	return sb.String()
}
