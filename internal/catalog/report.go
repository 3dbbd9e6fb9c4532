package catalog

import (
	"fmt"
	"strings"
)

// Report is a bundled report split into its header and sections.
type Report struct {
	Number         string
	Subject        string
	Classification string
	Status         string
	Header         []string
	Sections       []Section
}

// Section is one "== HEADING ==" block of a report.
type Section struct {
	Heading string
	Lines   []string
}

// ParseReport splits report text into header lines and sections.
func ParseReport(text string) Report {
	var r Report
	var cur *Section
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "==") && strings.HasSuffix(trimmed, "==") && len(trimmed) > 4 {
			r.Sections = append(r.Sections, Section{Heading: strings.TrimSpace(strings.Trim(trimmed, "="))})
			cur = &r.Sections[len(r.Sections)-1]
			continue
		}
		if cur != nil {
			if trimmed != "" {
				cur.Lines = append(cur.Lines, trimmed)
			}
			continue
		}
		if trimmed == "" {
			continue
		}
		r.Header = append(r.Header, trimmed)
		switch {
		case strings.HasPrefix(trimmed, "REPORT N°"):
			r.Number = strings.TrimPrefix(trimmed, "REPORT N°")
		case strings.HasPrefix(trimmed, "Subject:"):
			r.Subject = strings.TrimSpace(strings.TrimPrefix(trimmed, "Subject:"))
		case strings.HasPrefix(trimmed, "Classification:"):
			r.Classification = strings.TrimSpace(strings.TrimPrefix(trimmed, "Classification:"))
		case strings.HasPrefix(trimmed, "Status:"):
			r.Status = strings.TrimSpace(strings.TrimPrefix(trimmed, "Status:"))
		}
	}
	if r.Number == "" {
		r.Number = "001"
	}
	return r
}

// DecryptLines is the terminal preamble shown before a report opens.
func DecryptLines(number string) []string {
	lines := []string{
		"> MURKOFF_SYS v4.7.2 [BUILD 2847]",
		"> Initializing secure terminal...",
		"[OK] Kernel modules loaded",
		"> Establishing encrypted connection...",
		"[AUTH] Connecting to OMEGA-9 mainframe...",
		"[OK] Secure tunnel established",
		"[SCAN] Neural signature: CONFIRMED",
		"[OK] User authenticated: GP-TWO",
		fmt.Sprintf("> Requesting document: REPORT_ALPHA_%s", number),
	}
	for i := 1; i <= 5; i++ {
		lines = append(lines, fmt.Sprintf("[TRANSCRYPT] Decoding layer %d/5... OK", i))
	}
	return append(lines, "[OK] Document decrypted successfully")
}
