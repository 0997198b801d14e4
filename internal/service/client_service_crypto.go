package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-paste-decrypt/internal/compress"
	"github.com/MKhiriev/go-paste-decrypt/internal/crypto"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

// Protocol defaults used by Encrypt.
const (
	DefaultIterations = 100000
	DefaultFormatter  = "plaintext"

	keySizeBits = crypto.DerivedKeySize * 8
	tagSizeBits = crypto.TagSize * 8
	cipherAlgo  = "aes"
	cipherMode  = "gcm"
)

// SealOptions controls Encrypt. Zero values select a random IV and salt,
// [DefaultIterations], zlib compression and [DefaultFormatter].
type SealOptions struct {
	IV               []byte
	Salt             []byte
	Iterations       uint32
	Compression      models.CompressionType
	Formatter        string
	OpenDiscussion   bool
	BurnAfterReading bool
}

type pasteCryptoService struct {
	maxInflateSize int64
	logger         *logger.Logger
}

// NewPasteCryptoService returns a [PasteCryptoService]. maxInflateSize caps
// the decompressed payload in bytes; zero disables the cap.
func NewPasteCryptoService(maxInflateSize int64, logger *logger.Logger) PasteCryptoService {
	return &pasteCryptoService{maxInflateSize: maxInflateSize, logger: logger}
}

func (p *pasteCryptoService) Decrypt(secret crypto.Secret, env models.Envelope) (models.Attachment, error) {
	cipherParams := env.AData.Cipher

	iv, err := cipherParams.DecodeIV()
	if err != nil {
		return models.Attachment{}, err
	}
	salt, err := cipherParams.DecodeSalt()
	if err != nil {
		return models.Attachment{}, err
	}
	ct, err := env.DecodeCipherText()
	if err != nil {
		return models.Attachment{}, err
	}
	aad, err := env.AData.Canonical()
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %v", models.ErrMetadataParse, err)
	}
	p.logger.Debug().Str("func", "pasteCryptoService.Decrypt").
		Uint32("iterations", cipherParams.Iterations).
		Str("compression", string(cipherParams.Compression)).
		Int("ct_bytes", len(ct)).
		Msg("metadata parsed")

	key, err := crypto.DeriveKey(secret, salt, cipherParams.Iterations)
	if err != nil {
		return models.Attachment{}, err
	}

	plaintext, err := crypto.OpenGCM(key, iv, ct, aad)
	if err != nil {
		return models.Attachment{}, err
	}
	p.logger.Debug().Str("func", "pasteCryptoService.Decrypt").Int("bytes", len(plaintext)).Msg("decrypted")

	data, err := compress.InflateLimit(plaintext, cipherParams.Compression, p.maxInflateSize)
	if err != nil {
		return models.Attachment{}, err
	}
	p.logger.Debug().Str("func", "pasteCryptoService.Decrypt").Int("bytes", len(data)).Msg("decompressed")

	return models.ParseAttachment(data)
}

func (p *pasteCryptoService) Encrypt(secret crypto.Secret, att models.Attachment, opts SealOptions) (models.Envelope, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return models.Envelope{}, err
	}

	plaintext, err := json.Marshal(att)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encode attachment: %w", err)
	}
	payload, err := compress.Deflate(plaintext, opts.Compression)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("compress attachment: %w", err)
	}

	adata := models.AData{
		Cipher: models.Cipher{
			IV:          base64.StdEncoding.EncodeToString(opts.IV),
			Salt:        base64.StdEncoding.EncodeToString(opts.Salt),
			Iterations:  opts.Iterations,
			KeySize:     keySizeBits,
			TagSize:     tagSizeBits,
			Algorithm:   cipherAlgo,
			Mode:        cipherMode,
			Compression: opts.Compression,
		},
		Formatter:        opts.Formatter,
		OpenDiscussion:   boolFlag(opts.OpenDiscussion),
		BurnAfterReading: boolFlag(opts.BurnAfterReading),
	}
	aad, err := adata.Canonical()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encode associated data: %w", err)
	}

	key, err := crypto.DeriveKey(secret, opts.Salt, opts.Iterations)
	if err != nil {
		return models.Envelope{}, err
	}
	ct, err := crypto.SealGCM(key, opts.IV, payload, aad)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvalidSealInput, err)
	}

	return models.Envelope{
		AData:      adata,
		CipherText: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

func (o SealOptions) withDefaults() (SealOptions, error) {
	var err error
	if o.IV == nil {
		if o.IV, err = crypto.GenerateNonce(); err != nil {
			return o, err
		}
	}
	if o.Salt == nil {
		if o.Salt, err = crypto.GenerateSalt(); err != nil {
			return o, err
		}
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Compression == "" {
		o.Compression = models.CompressionZlib
	}
	if o.Formatter == "" {
		o.Formatter = DefaultFormatter
	}
	if len(o.IV) != crypto.NonceSize {
		return o, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidSealInput, crypto.NonceSize, len(o.IV))
	}
	return o, nil
}

func boolFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
