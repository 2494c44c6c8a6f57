package config

import (
	"encoding/hex"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra/crypt"
	"github.com/urfave/cli/v3"
)

// Crypt holds the AES key that protects stored repository passwords. The key
// is given hex-encoded or as a file of raw key bytes.
type Crypt struct {
	key     types.CryptKey `masq:"secret"`
	keyFile string
}

func (x *Crypt) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "crypt-key",
			Usage:       "Hex-encoded AES key (16, 24 or 32 bytes)",
			Category:    "Crypt",
			Destination: (*string)(&x.key),
			Sources:     cli.EnvVars("GRAW_CRYPT_KEY"),
		},
		&cli.StringFlag{
			Name:        "crypt-key-file",
			Usage:       "Path to a file holding the raw AES key",
			Category:    "Crypt",
			Destination: &x.keyFile,
			Sources:     cli.EnvVars("GRAW_CRYPT_KEY_FILE"),
		},
	}
}

func (x *Crypt) loadKey() ([]byte, error) {
	switch {
	case x.key != "" && x.keyFile != "":
		return nil, goerr.Wrap(types.ErrInvalidOption, "crypt-key and crypt-key-file are mutually exclusive")

	case x.key != "":
		key, err := hex.DecodeString(string(x.key))
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "crypt-key is not hex-encoded")
		}
		return key, nil

	case x.keyFile != "":
		key, err := os.ReadFile(x.keyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read crypt key file", goerr.V("path", x.keyFile))
		}
		return key, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "crypt-key or crypt-key-file is required")
	}
}

func (x *Crypt) New() (*crypt.AESCrypter, error) {
	key, err := x.loadKey()
	if err != nil {
		return nil, err
	}
	return crypt.NewAES(key)
}

func (x *Crypt) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("key.len", len(x.key)),
		slog.String("keyFile", x.keyFile),
	)
}
