package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Local is an in-process credential store for development and tests, so the
// portal runs without the hosted provider.
type Local struct {
	mu       sync.RWMutex
	accounts map[string]localAccount
}

type localAccount struct {
	subjectID string
	salt      []byte
	hash      [32]byte
}

func NewLocal() *Local {
	return &Local{accounts: make(map[string]localAccount)}
}

func (l *Local) SignUp(email, password string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[email]; ok {
		return "", errors.New("account exists")
	}
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	acc := localAccount{
		subjectID: uuid.NewString(),
		salt:      salt,
		hash:      hashPassword(salt, password),
	}
	l.accounts[email] = acc
	return acc.subjectID, nil
}

func (l *Local) SignIn(email, password string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[email]
	if !ok {
		return "", errors.New("unknown account")
	}
	want := hashPassword(acc.salt, password)
	if subtle.ConstantTimeCompare(want[:], acc.hash[:]) != 1 {
		return "", errors.New("wrong password")
	}
	return acc.subjectID, nil
}

func hashPassword(salt []byte, password string) [32]byte {
	return sha256.Sum256(append(append([]byte{}, salt...), []byte(password)...))
}
