package auth

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. Tests lower it.
var Cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
