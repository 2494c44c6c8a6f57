// Package crypt protects repository passwords at rest with AES in CBC mode.
// A ciphertext is the random 16 byte IV followed by the PKCS#7 padded,
// encrypted plaintext.
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

type AESCrypter struct {
	block cipher.Block
}

var _ interfaces.Crypter = (*AESCrypter)(nil)

// NewAES accepts a 16, 24 or 32 byte key.
func NewAES(key []byte) (*AESCrypter, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid AES key",
			goerr.V("length", len(key)),
			goerr.V("error", err.Error()),
		)
	}
	return &AESCrypter{block: block}, nil
}

func (x *AESCrypter) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pad(plaintext, aes.BlockSize)

	out := make([]byte, aes.BlockSize+len(padded))
	iv := out[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, goerr.Wrap(err, "failed to generate IV")
	}

	cipher.NewCBCEncrypter(x.block, iv).CryptBlocks(out[aes.BlockSize:], padded)
	return out, nil
}

func (x *AESCrypter) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 2*aes.BlockSize || len(ciphertext)%aes.BlockSize != 0 {
		return nil, goerr.Wrap(types.ErrDecryption, "ciphertext has invalid length",
			goerr.V("length", len(ciphertext)))
	}

	iv := ciphertext[:aes.BlockSize]
	body := ciphertext[aes.BlockSize:]
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(x.block, iv).CryptBlocks(plain, body)

	return unpad(plain, aes.BlockSize)
}

func pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, size int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > size {
		return nil, goerr.Wrap(types.ErrDecryption, "invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, goerr.Wrap(types.ErrDecryption, "invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
