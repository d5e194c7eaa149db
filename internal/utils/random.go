package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

func randomIndex(n int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return int(i.Int64())
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", randomIndex(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[randomIndex(len(letters))]
	}
	return string(randomPassword)
}
