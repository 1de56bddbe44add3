package keyring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/crypto"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/rsa"
	"github.com/kingaa1/Cryptography-algorithms/internal/services/keyring"
	"github.com/kingaa1/Cryptography-algorithms/internal/store"
)

const pass = "Correct-Horse-9"

var (
	p61 = bigint.MustParse("2305843009213693951")
	p89 = bigint.MustParse("618970019642690137449562111")
	e   = bigint.MustParse("65537")
)

func newService(t *testing.T) *keyring.Service {
	t.Helper()
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	return keyring.New(store.NewKeyFileStore(t.TempDir(), nil), nil, keyring.WithClock(clock))
}

func TestGenerateRSA_StoresSealedKey(t *testing.T) {
	svc := newService(t)

	rec, err := svc.GenerateRSA(pass, p61, p89, e)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "1427247692705959880439315947500961989719490561", rec.Public.N.String())
	assert.Equal(t, keyring.Fingerprint(rec.Public), rec.Fingerprint)
	assert.Equal(t, int64(1700000000), rec.CreatedUTC)

	d, err := crypto.OpenSecret(pass, rec.SealedD)
	require.NoError(t, err)
	assert.Equal(t, "740443132154395775117746638826656402702473", d)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newService(t)
	rec, err := svc.GenerateRSA(pass, p61, p89, e)
	require.NoError(t, err)

	shared := bigint.MustParse("123456789012345678901")
	c, err := svc.Encrypt(rec.ID, "keyring", shared)
	require.NoError(t, err)

	pt, err := svc.Decrypt(pass, rec.ID, c, shared)
	require.NoError(t, err)
	assert.Equal(t, "keyring", pt)
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	svc := newService(t)
	rec, err := svc.GenerateRSA(pass, p61, p89, e)
	require.NoError(t, err)

	shared := bigint.MustParse("7")
	c, err := svc.Encrypt(rec.ID, "hi", shared)
	require.NoError(t, err)

	_, err = svc.Decrypt("Wrong-Horse-99", rec.ID, c, shared)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestGenerateRSA_Errors(t *testing.T) {
	svc := newService(t)

	_, err := svc.GenerateRSA("short", p61, p89, e)
	assert.ErrorIs(t, err, keyring.ErrWeakPassphrase)

	_, err = svc.GenerateRSA(pass, p61, p89, bigint.MustParse("17"))
	assert.ErrorIs(t, err, rsa.ErrInvalidExponent)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnknownKey(t *testing.T) {
	svc := newService(t)

	_, err := svc.Encrypt("missing", "x", bigint.One())
	assert.ErrorIs(t, err, keyring.ErrUnknownKey)

	_, err = svc.Decrypt(pass, "missing", bigint.One(), bigint.One())
	assert.ErrorIs(t, err, keyring.ErrUnknownKey)

	assert.ErrorIs(t, svc.Delete("missing"), store.ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	rec, err := svc.GenerateRSA(pass, bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(rec.ID))
	_, err = svc.Encrypt(rec.ID, "A", bigint.One())
	assert.ErrorIs(t, err, keyring.ErrUnknownKey)
}

func TestFingerprint_DependsOnPublicKey(t *testing.T) {
	a := domain.RSAPublicKey{N: bigint.MustParse("3233"), E: bigint.MustParse("17")}
	b := domain.RSAPublicKey{N: bigint.MustParse("3233"), E: bigint.MustParse("7")}
	assert.NotEqual(t, keyring.Fingerprint(a), keyring.Fingerprint(b))
}
