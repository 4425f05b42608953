package utils

import "golang.org/x/crypto/bcrypt"

// Bcrypt 密码哈希；Cost 为 0 时用 bcrypt.DefaultCost
type Bcrypt struct{ Cost int }

func (b Bcrypt) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (Bcrypt) Compare(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
