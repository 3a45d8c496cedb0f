package normalize

import "strings"

// encryptionNotice marks the WhatsApp system line injected at export time.
const encryptionNotice = "end-to-end encrypted"

// Clean removes every line carrying the encryption notice from raw export
// text. All other lines and their order are preserved verbatim.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), encryptionNotice) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
