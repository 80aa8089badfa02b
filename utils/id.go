// utils/id.go
package utils

import "crypto/rand"

const orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderCode generates a shop-readable order code like "JK-4F7QZ".
func NewOrderCode() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to generate order code")
	}
	code := make([]byte, 0, 8)
	code = append(code, 'J', 'K', '-')
	for _, b := range buf {
		code = append(code, orderCodeAlphabet[int(b)%len(orderCodeAlphabet)])
	}
	return string(code)
}
