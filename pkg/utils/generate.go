package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateConfirmationCode creates a numeric one-time code of the given length.
func GenerateConfirmationCode(length int) string {
	if length <= 0 {
		length = 6
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	code := ""
	for i := 0; i < length; i++ {
		code += fmt.Sprintf("%d", rng.Intn(10))
	}

	return code
}
