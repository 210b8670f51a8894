package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CaseIDPrefix is the jurisdiction prefix on generated case numbers.
const CaseIDPrefix = "M-M"

// NewCaseID returns CaseIDPrefix followed by a random 8-digit number.
func NewCaseID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", CaseIDPrefix, 10000000+n.Int64()), nil
}
