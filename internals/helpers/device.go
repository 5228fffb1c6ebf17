package helper

import (
	"net"
	"strings"
)

// NormalizeDeviceID: MAC address (format apa pun yang diterima net.ParseMAC)
// dijadikan huruf besar dengan pemisah ':'; token lain cukup di-trim.
// Dipakai saat daftar siswa maupun saat sinyal masuk, jadi lookup tetap exact match.
func NormalizeDeviceID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if hw, err := net.ParseMAC(s); err == nil {
		return strings.ToUpper(hw.String())
	}
	return s
}
