// Package admin manages administrator accounts: bcrypt-hashed credentials,
// account creation and the bootstrap admin a fresh deployment starts with.
package admin

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is the minimum accepted password length for new admins.
const MinPasswordLen = 6

type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
